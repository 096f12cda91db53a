// Package action adapts the APOD lookup to an orchestration runner: the
// runner hands over loosely typed parameters and gets the parsed response
// document back.
package action

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"apod"
	"apod/pkg/apodclient"
	"apod/pkg/consts"
	"apod/pkg/metrics"
	srvc "apod/pkg/service"

	"github.com/sirupsen/logrus"
)

// Parameters are the action inputs as delivered by a runner.
type Parameters map[string]interface{}

// ParameterError reports an ill-typed runner parameter.
type ParameterError struct {
	Name   string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ParameterError) Is(target error) bool {
	_, ok := target.(*ParameterError)
	return ok
}

// ParameterSpec describes one action input.
type ParameterSpec struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
}

// Definition is the manifest a runner uses to discover the action.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterSpec `json:"parameters"`
}

type Action struct {
	services   *srvc.Service
	defaultKey string
}

// NewAction builds the action. defaultKey is used when the runner omits
// api_key; an empty defaultKey means the demo key.
func NewAction(services *srvc.Service, defaultKey string) *Action {
	if defaultKey == "" {
		defaultKey = consts.DemoKey
	}
	return &Action{services: services, defaultKey: defaultKey}
}

func (a *Action) Definition() Definition {
	return Definition{
		Name:        consts.ActionName,
		Description: "Retrieve the Astronomy Picture of the Day metadata, including the image URL.",
		Parameters: []ParameterSpec{
			{Name: consts.ApiKey, Type: "string", Description: "API key for api.nasa.gov.", Required: true, Default: consts.DemoKey},
			{Name: consts.ParamDate, Type: "string", Description: "Date of the picture, YYYY-MM-DD. Defaults to today."},
			{Name: consts.ParamHd, Type: "boolean", Description: "Ask for the high resolution image.", Default: false},
		},
	}
}

// Run decodes params, performs the lookup and returns the response document.
func (a *Action) Run(ctx context.Context, params Parameters) (apod.Metadata, error) {
	p, err := a.DecodeParameters(params)
	if err != nil {
		metrics.ActionRunsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"action": consts.ActionName,
		"date":   p.Date,
		"hd":     p.HD,
	}).Info("running action")

	md, err := a.services.Metadata(ctx, p)
	if err != nil {
		metrics.ActionRunsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("action %s: %w", consts.ActionName, err)
	}

	metrics.ActionRunsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return md, nil
}

// DecodeParameters converts runner parameters into a lookup. Absent or null
// values take their defaults.
func (a *Action) DecodeParameters(params Parameters) (apodclient.Params, error) {
	p := apodclient.Params{APIKey: a.defaultKey}

	if v, ok := params[consts.ApiKey]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return p, &ParameterError{Name: consts.ApiKey, Reason: fmt.Sprintf("expected string, got %T", v)}
		}
		if s != "" {
			p.APIKey = s
		}
	}

	if v, ok := params[consts.ParamDate]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return p, &ParameterError{Name: consts.ParamDate, Reason: fmt.Sprintf("expected string, got %T", v)}
		}
		p.Date = strings.TrimSpace(s)
	}

	if err := apodclient.ValidateDate(p.Date); err != nil {
		return p, &ParameterError{Name: consts.ParamDate, Reason: err.Error()}
	}

	if v, ok := params[consts.ParamHd]; ok && v != nil {
		hd, err := toBool(v)
		if err != nil {
			return p, &ParameterError{Name: consts.ParamHd, Reason: err.Error()}
		}
		p.HD = hd
	}

	return p, nil
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if b == "" {
			return false, nil
		}
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}
