//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/builder"
	queriesmock "github.com/B1gB4dB4ng/HotelApp/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Check(t *testing.T) {
	ctx := context.Background()
	checkIn, checkOut := builder.Date(2024, 7, 1), builder.Date(2024, 7, 3)

	stay := func(in, out time.Time) queries.StayView { return queries.StayView{CheckIn: in, CheckOut: out} }

	testCases := []struct {
		name      string
		room      *builder.RoomBuilder
		checkIn   time.Time
		checkOut  time.Time
		setupMock func(*queriesmock.MockRoomReadStore, *queriesmock.MockBookingReadStore, *builder.RoomBuilder)
		available bool
		reason    string
	}{
		{
			name:     "available: no live stays",
			room:     builder.NewRoomBuilder(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
				bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).Return(nil, nil)
			},
			available: true,
		},
		{
			name:     "available: adjacent stays do not overlap",
			room:     builder.NewRoomBuilder(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
				bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).Return([]queries.StayView{
					stay(builder.Date(2024, 6, 28), checkIn),
					stay(checkOut, builder.Date(2024, 7, 5)),
				}, nil)
			},
			available: true,
		},
		{
			name:     "available: reserved occupancy cache is ignored",
			room:     builder.NewRoomBuilder().AsReserved(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
				bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).Return(nil, nil)
			},
			available: true,
		},
		{
			name:     "unavailable: overlapping stay",
			room:     builder.NewRoomBuilder(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
				bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).Return([]queries.StayView{
					stay(builder.Date(2024, 7, 2), builder.Date(2024, 7, 4)),
				}, nil)
			},
			reason: queries.ReasonOverlap,
		},
		{
			name:     "unavailable: inactive room",
			room:     builder.NewRoomBuilder().AsInactive(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
				bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).Return(nil, nil)
			},
			reason: queries.ReasonRoomNotBookable,
		},
		{
			name:     "unavailable: unknown room",
			room:     builder.NewRoomBuilder(),
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func(rooms *queriesmock.MockRoomReadStore, bookings *queriesmock.MockBookingReadStore, rb *builder.RoomBuilder) {
				notFound := infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
				rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(nil, notFound)
			},
			reason: queries.ReasonRoomNotBookable,
		},
		{
			name:      "unavailable: check-out equals check-in",
			room:      builder.NewRoomBuilder(),
			checkIn:   checkIn,
			checkOut:  checkIn,
			setupMock: func(*queriesmock.MockRoomReadStore, *queriesmock.MockBookingReadStore, *builder.RoomBuilder) {},
			reason:    queries.ReasonInvalidRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rooms := queriesmock.NewMockRoomReadStore(ctrl)
			bookings := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setupMock(rooms, bookings, tc.room)

			q := queries.NewAvailabilityQueries(rooms, bookings)
			view, err := q.Check(ctx, tc.room.ID, tc.checkIn, tc.checkOut)

			require.NoError(t, err)
			assert.Equal(t, tc.available, view.Available)
			assert.Equal(t, tc.reason, view.Reason)
			assert.Equal(t, tc.checkIn.Format("2006-01-02"), view.CheckIn)
		})
	}
}

func TestAvailabilityQueries_IsAvailable_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rb := builder.NewRoomBuilder()
	rooms := queriesmock.NewMockRoomReadStore(ctrl)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)

	rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildView(), nil)
	bookings.EXPECT().LiveStaysForRoom(gomock.Any(), rb.ID, nil).
		Return(nil, infra.WrapRepoErr("failed to list live stays for room", errors.New("connection reset")))

	q := queries.NewAvailabilityQueries(rooms, bookings)
	ok, err := q.IsAvailable(context.Background(), rb.ID, builder.Date(2024, 7, 1), builder.Date(2024, 7, 3))

	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
