package magiceden_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/mocks"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/magiceden"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestVerifyBio(t *testing.T) {
	tests := []struct {
		name     string
		bio      string
		getErr   error
		expected bool
	}{
		{
			name:     "bio contains user id",
			bio:      "pixel pepe enjoyer | discord: 123456789",
			expected: true,
		},
		{
			name:     "bio with surrounding whitespace",
			bio:      "  123456789  ",
			expected: true,
		},
		{
			name:     "bio missing user id",
			bio:      "just vibing",
			expected: false,
		},
		{
			name:     "empty bio",
			bio:      "",
			expected: false,
		},
		{
			name:     "lookup failure degrades to unverified",
			getErr:   errors.New("503 service unavailable"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			client := magiceden.NewClient(mockHTTP, nil, "https://api-mainnet.magiceden.dev/v2/wallets")

			expectedURL := "https://api-mainnet.magiceden.dev/v2/wallets/bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"
			call := mockHTTP.EXPECT().Get(gomock.Any(), expectedURL, nil, gomock.Any())
			if tt.getErr != nil {
				call.Return(tt.getErr)
			} else {
				call.DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
					profile := result.(*magiceden.Profile)
					profile.Bio = tt.bio
					return nil
				})
			}

			// Address is normalized before it reaches the URL
			verified := client.VerifyBio(context.Background(), " BC1QXY2KGDYGJRSQTZQ2N0YRF2493P83KKFJHX0WLH ", "123456789")
			assert.Equal(t, tt.expected, verified)
		})
	}
}
