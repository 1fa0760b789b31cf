//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/payment"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/builder"
	queriesmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentQueries_GetReceipt(t *testing.T) {
	ctx := context.Background()
	guest := builder.NewUserBuilder().BuildActor()
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()

	testCases := []struct {
		name          string
		actor         user.Actor
		receipt       *queries.ReceiptView
		storeErr      error
		expectedError error
	}{
		{
			name:    "success: payer downloads receipt",
			actor:   guest,
			receipt: builder.NewPaymentBuilder().WithUserID(guest.ID).BuildReceipt(),
		},
		{
			name:    "success: admin downloads any receipt",
			actor:   admin,
			receipt: builder.NewPaymentBuilder().BuildReceipt(),
		},
		{
			name:          "error: payment is not completed",
			actor:         guest,
			receipt:       builder.NewPaymentBuilder().WithUserID(guest.ID).WithStatus(payment.StatusPending).BuildReceipt(),
			expectedError: queries.ErrReceiptUnavailable,
		},
		{
			name:          "error: someone else's payment",
			actor:         guest,
			receipt:       builder.NewPaymentBuilder().BuildReceipt(),
			expectedError: user.ErrNotOwner,
		},
		{
			name:          "error: payment not found",
			actor:         guest,
			storeErr:      infra.WrapRepoErr("payment not found", nil, infra.KindNotFound),
			expectedError: payment.ErrPaymentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockPaymentReadStore(ctrl)
			id := builder.NewPaymentBuilder().ID
			store.EXPECT().FindReceipt(ctx, id).Return(tc.receipt, tc.storeErr)

			got, err := queries.NewPaymentQueries(store).GetReceipt(ctx, tc.actor, id)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedError), "expected %v, got %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.receipt, got)
		})
	}
}

func TestPaymentQueries_List(t *testing.T) {
	ctx := context.Background()
	guest := builder.NewUserBuilder().BuildActor()
	bad := "settled"

	t.Run("success: guest listing scoped to the guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockPaymentReadStore(ctrl)
		rows := []*queries.PaymentView{builder.NewPaymentBuilder().WithUserID(guest.ID).BuildView()}
		store.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.PaymentFilter) ([]*queries.PaymentView, error) {
				require.NotNil(t, f.UserID)
				assert.Equal(t, guest.ID, *f.UserID)
				return rows, nil
			})

		got, err := queries.NewPaymentQueries(store).List(ctx, guest, queries.PaymentFilter{})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockPaymentReadStore(ctrl)

		_, err := queries.NewPaymentQueries(store).List(ctx, guest, queries.PaymentFilter{Status: &bad})

		assert.True(t, errs.Is(err, payment.ErrInvalidStatus))
	})
}
