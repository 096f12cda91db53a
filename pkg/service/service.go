package service

import (
	"context"

	"apod"
	"apod/pkg/apodclient"
)

// Fetcher is the upstream lookup the services are built on.
type Fetcher interface {
	Fetch(ctx context.Context, p apodclient.Params) (apod.Metadata, error)
}

type Picture interface {
	Metadata(ctx context.Context, p apodclient.Params) (apod.Metadata, error)
	ImageURL(ctx context.Context, p apodclient.Params) (string, error)
}

type Service struct {
	Picture
}

func NewService(f Fetcher) *Service {
	return &Service{
		Picture: NewPictureService(f),
	}
}
