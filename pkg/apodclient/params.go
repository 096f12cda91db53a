package apodclient

import (
	"net/url"
	"time"

	"apod/pkg/consts"
)

// Params are the inputs of a single APOD lookup.
type Params struct {
	APIKey string
	// Date is YYYY-MM-DD; empty means today.
	Date string
	HD   bool
}

var firstPicture, _ = time.Parse(consts.TimeFormat, consts.FirstPictureDate)

// ValidateDate checks the YYYY-MM-DD layout and that the date is not before
// the first picture. An empty date is valid.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}

	d, err := time.Parse(consts.TimeFormat, date)
	if err != nil {
		return &InvalidDateError{Date: date, Reason: "expected YYYY-MM-DD"}
	}

	if d.Before(firstPicture) {
		return &InvalidDateError{Date: date, Reason: "before " + consts.FirstPictureDate}
	}

	return nil
}

// BuildQuery assembles the query parameters. api_key is always present,
// date only when set, hd only when true.
func BuildQuery(p Params) (url.Values, error) {
	if err := ValidateDate(p.Date); err != nil {
		return nil, err
	}

	key := p.APIKey
	if key == "" {
		key = consts.DemoKey
	}

	q := url.Values{}
	q.Set(consts.ApiKey, key)

	if p.Date != "" {
		q.Set(consts.ParamDate, p.Date)
	}

	if p.HD {
		q.Set(consts.ParamHd, consts.True)
	}

	return q, nil
}

// MakeRequestURL merges params into the query of baseUrl.
func MakeRequestURL(baseUrl string, params url.Values) (string, error) {
	ur, err := url.Parse(baseUrl)
	if err != nil {
		return "", err
	}

	q := ur.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}

	ur.RawQuery = q.Encode()
	return ur.String(), nil
}
