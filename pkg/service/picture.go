package service

import (
	"context"
	"fmt"

	"apod"
	"apod/pkg/apodclient"
	"apod/pkg/consts"
)

// FieldMissingError is returned when the response lacks the requested URL
// field, e.g. HD was asked for on a day that has no HD image.
type FieldMissingError struct {
	Field string
	Date  string
}

func (e *FieldMissingError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("field %q missing from APOD response for %s", e.Field, e.Date)
	}
	return fmt.Sprintf("field %q missing from APOD response", e.Field)
}

// Is allows for error checking with errors.Is().
func (e *FieldMissingError) Is(target error) bool {
	_, ok := target.(*FieldMissingError)
	return ok
}

type PictureService struct {
	fetcher Fetcher
}

func NewPictureService(f Fetcher) *PictureService {
	return &PictureService{f}
}

func (s *PictureService) Metadata(ctx context.Context, p apodclient.Params) (apod.Metadata, error) {
	return s.fetcher.Fetch(ctx, p)
}

// ImageURL returns hdurl when p.HD is set and url otherwise.
func (s *PictureService) ImageURL(ctx context.Context, p apodclient.Params) (string, error) {
	md, err := s.fetcher.Fetch(ctx, p)
	if err != nil {
		return "", err
	}

	return ChooseURL(md, p.HD)
}

// ChooseURL picks the URL field matching hd out of md.
func ChooseURL(md apod.Metadata, hd bool) (string, error) {
	field := consts.FieldURL
	if hd {
		field = consts.FieldHDURL
	}

	u, ok := md.Field(field)
	if !ok || u == "" {
		date, _ := md.Field(consts.ParamDate)
		return "", &FieldMissingError{Field: field, Date: date}
	}

	return u, nil
}
