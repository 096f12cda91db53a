package service

import (
	"context"
	"errors"
	"testing"

	"apod"
	"apod/pkg/apodclient"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	md   apod.Metadata
	err  error
	seen apodclient.Params
}

func (f *fakeFetcher) Fetch(_ context.Context, p apodclient.Params) (apod.Metadata, error) {
	f.seen = p
	return f.md, f.err
}

func TestChooseURL(t *testing.T) {

	tests := []struct {
		name          string
		model         apod.Metadata
		hd            bool
		expectedUrl   string
		expectedError error
	}{
		{
			name: "url",
			model: apod.Metadata{
				"date":  "2009-03-29",
				"url":   "https://apod.nasa.gov/apod/image/0903/sn94d_highz.jpg",
				"hdurl": "https://apod.nasa.gov/apod/image/0903/sn94d_highz_big.jpg",
			},
			expectedUrl: "https://apod.nasa.gov/apod/image/0903/sn94d_highz.jpg",
		}, {
			name: "hd url",
			model: apod.Metadata{
				"date":  "2009-03-29",
				"url":   "https://apod.nasa.gov/apod/image/0903/sn94d_highz.jpg",
				"hdurl": "https://apod.nasa.gov/apod/image/0903/sn94d_highz_big.jpg",
			},
			hd:          true,
			expectedUrl: "https://apod.nasa.gov/apod/image/0903/sn94d_highz_big.jpg",
		}, {
			name: "hd missing for video",
			model: apod.Metadata{
				"date":       "2017-07-31",
				"media_type": "video",
				"url":        "https://www.youtube.com/embed/rJzKDbnXyH0?rel=0",
			},
			hd:            true,
			expectedError: errors.New(`field "hdurl" missing from APOD response for 2017-07-31`),
		}, {
			name:          "url null",
			model:         apod.Metadata{"url": nil},
			expectedError: errors.New(`field "url" missing from APOD response`),
		}, {
			name:          "url wrong type",
			model:         apod.Metadata{"url": 42.0},
			expectedError: errors.New(`field "url" missing from APOD response`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			actual, err := ChooseURL(tt.model, tt.hd)

			if tt.expectedError == nil {
				require.NoError(t, err)
			} else {
				require.Equal(t, tt.expectedError.Error(), err.Error())
				require.True(t, errors.Is(err, &FieldMissingError{}))
			}

			require.Equal(t, tt.expectedUrl, actual)
		})
	}
}

func TestImageURL(t *testing.T) {
	f := &fakeFetcher{md: apod.Metadata{"url": "u", "hdurl": "h"}}
	s := NewService(f)

	u, err := s.ImageURL(context.Background(), apodclient.Params{HD: true, Date: "2020-01-01"})
	require.NoError(t, err)
	require.Equal(t, "h", u)
	require.Equal(t, "2020-01-01", f.seen.Date)

	u, err = s.ImageURL(context.Background(), apodclient.Params{})
	require.NoError(t, err)
	require.Equal(t, "u", u)
}

func TestImageURLPropagatesFetchError(t *testing.T) {
	upstream := &apodclient.UpstreamError{StatusCode: 500, Status: "500 Internal Server Error"}
	s := NewService(&fakeFetcher{err: upstream})

	u, err := s.ImageURL(context.Background(), apodclient.Params{})
	require.Empty(t, u)
	require.ErrorIs(t, err, upstream)
}

func TestMetadataReturnsDocumentVerbatim(t *testing.T) {
	md := apod.Metadata{"url": "u", "extra": map[string]interface{}{"a": 1.0}}
	s := NewService(&fakeFetcher{md: md})

	got, err := s.Metadata(context.Background(), apodclient.Params{})
	require.NoError(t, err)
	require.Equal(t, md, got)
}
