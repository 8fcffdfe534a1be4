package bestinslot_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpepes/holderbot/internal/logger"
	"github.com/pixelpepes/holderbot/internal/mocks"
	"github.com/pixelpepes/holderbot/internal/providers/vendors/bestinslot"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const snapshotCSV = ` wallet , inscriptions_count ,inscriptions
 BC1QXY2KGDYGJRSQTZQ2N0YRF2493P83KKFJHX0WLH , 3 ,"insc1,insc2,insc3"
bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq, 1 ,insc9
bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4, 0 ,""
`

func TestCheckOwnership_Holder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := bestinslot.NewClient(mockHTTP, nil, "https://v2api.bestinslot.xyz/collection/snapshot")

	expectedURL := "https://v2api.bestinslot.xyz/collection/snapshot?slug=pixelpepes&type=csv"
	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), expectedURL, nil).
		Return([]byte(snapshotCSV), nil)

	// The input address differs in case and whitespace from the snapshot row
	record := client.CheckOwnership(context.Background(), " bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh ", "pixelpepes")

	assert.True(t, record.IsHolder)
	require.NotNil(t, record.Count)
	assert.Equal(t, 3, *record.Count)
	require.NotNil(t, record.Detail)
	assert.Equal(t, "insc1,insc2,insc3", *record.Detail)
	assert.False(t, record.LookupFailed)
}

func TestCheckOwnership_NotInSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := bestinslot.NewClient(mockHTTP, nil, "https://v2api.bestinslot.xyz/collection/snapshot")

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return([]byte(snapshotCSV), nil)

	record := client.CheckOwnership(context.Background(), "bc1qunknown", "pixelpepes")

	assert.False(t, record.IsHolder)
	assert.Nil(t, record.Count)
	assert.Nil(t, record.Detail)
	assert.False(t, record.LookupFailed)
}

func TestCheckOwnership_ZeroCountIsNotHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := bestinslot.NewClient(mockHTTP, nil, "https://v2api.bestinslot.xyz/collection/snapshot")

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return([]byte(snapshotCSV), nil)

	record := client.CheckOwnership(context.Background(), "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", "pixelpepes")

	assert.False(t, record.IsHolder)
	assert.False(t, record.LookupFailed)
}

func TestCheckOwnership_TransportFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := bestinslot.NewClient(mockHTTP, nil, "https://v2api.bestinslot.xyz/collection/snapshot")

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(nil, errors.New("connection refused"))

	// Failures degrade to unknown, they never panic or propagate
	record := client.CheckOwnership(context.Background(), "bc1qxy", "pixelpepes")

	assert.False(t, record.IsHolder)
	assert.True(t, record.LookupFailed)
}

func TestCheckOwnership_MalformedSnapshotDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := bestinslot.NewClient(mockHTTP, nil, "https://v2api.bestinslot.xyz/collection/snapshot")

	tests := []struct {
		name string
		body string
	}{
		{name: "missing wallet column", body: "foo,bar\n1,2\n"},
		{name: "unparsable count", body: "wallet,inscriptions_count,inscriptions\nbc1qxy,not-a-number,x\n"},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHTTP.EXPECT().
				GetBytes(gomock.Any(), gomock.Any(), nil).
				Return([]byte(tt.body), nil)

			record := client.CheckOwnership(context.Background(), "bc1qxy", "pixelpepes")
			assert.False(t, record.IsHolder)
			assert.True(t, record.LookupFailed)
		})
	}
}
