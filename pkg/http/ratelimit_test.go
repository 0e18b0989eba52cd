package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/AntonioSertic23/nextup/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRateLimitedHTTPClient(t *testing.T) {
	type args struct {
		opts []ClientOption
	}
	tests := []struct {
		name string
		args args
		want *RateLimitedClient
	}{
		{
			name: "default",
			args: args{
				opts: []ClientOption{},
			},
			want: &RateLimitedClient{
				client:      http.DefaultClient,
				maxRetries:  DefaultMaxRetries,
				baseBackoff: DefaultBaseBackoff,
			},
		},
		{
			name: "custom",
			args: args{
				opts: []ClientOption{
					WithMaxRetries(5),
					WithBaseBackoff(time.Millisecond * 100),
				},
			},
			want: &RateLimitedClient{
				client:      http.DefaultClient,
				maxRetries:  5,
				baseBackoff: time.Millisecond * 100,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRateLimitedHTTPClient(tt.args.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewRateLimitedHTTPClient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Times(1).Return(nil, errors.New("boom"))

		c := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := c.Do(req)
		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("success passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		want := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("{}")),
		}
		mhttp.EXPECT().Do(req).Times(1).Return(want, nil)

		c := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := c.Do(req)
		assert.NoError(t, err)
		assert.Same(t, want, resp)
	})

	t.Run("waits out a 429 then succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		limited := &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(bytes.NewBufferString("")),
		}
		ok := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("{}")),
		}

		gomock.InOrder(
			mhttp.EXPECT().Do(req).Times(1).Return(limited, nil),
			mhttp.EXPECT().Do(req).Times(1).Return(ok, nil),
		)

		c := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithBaseBackoff(time.Millisecond))
		resp, err := c.Do(req)
		assert.NoError(t, err)
		assert.Same(t, ok, resp)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Times(2).DoAndReturn(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		})

		c := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(2), WithBaseBackoff(time.Millisecond))
		_, err = c.Do(req)
		assert.Error(t, err)
	})
}
