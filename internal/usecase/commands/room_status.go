package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/booking"
	"github.com/B1gB4dB4ng/HotelApp/internal/domain/room"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileReport struct {
	Today         time.Time `json:"today"`
	RoomsChecked  int       `json:"rooms_checked"`
	RoomsReleased int       `json:"rooms_released"`
	RoomsSkipped  int       `json:"rooms_skipped"`
	Failures      int       `json:"failures"`
}

type RoomStatusCommands interface {
	// ReconcileExpired runs one pass over rooms whose stays have ended.
	// Only listing the rooms can fail the pass; per-room errors are counted.
	ReconcileExpired(ctx context.Context) (ReconcileReport, error)
}

type roomStatusUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewRoomStatusUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) RoomStatusCommands {
	return &roomStatusUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   cfg.Worker.Location(),
	}
}

func (uc *roomStatusUseCaseImpl) ReconcileExpired(ctx context.Context) (ReconcileReport, error) {
	today := booking.Today(uc.clock.Now(), uc.loc)
	report := ReconcileReport{Today: today}

	roomIDs, err := uc.uow.CommandReads().RoomsWithExpiredStays(ctx, today)
	if err != nil {
		return report, err
	}

	for _, roomID := range roomIDs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.RoomsChecked++

		decision, err := uc.reconcileRoom(ctx, roomID, today)
		if err != nil {
			report.Failures++
			slog.Warn("Room reconciliation failed",
				"room_id", roomID,
				"error", err.Error())
			continue
		}
		if decision == room.Release {
			report.RoomsReleased++
		} else {
			report.RoomsSkipped++
		}
	}

	slog.Info("Reconciliation pass finished",
		"today", today.Format(booking.DateLayout),
		"rooms_checked", report.RoomsChecked,
		"rooms_released", report.RoomsReleased,
		"rooms_skipped", report.RoomsSkipped,
		"failures", report.Failures)
	return report, nil
}

// reconcileRoom re-reads the room under its lock so a booking created since
// the listing is taken into account.
func (uc *roomStatusUseCaseImpl) reconcileRoom(ctx context.Context, roomID uuid.UUID, today time.Time) (room.ReleaseDecision, error) {
	var decision room.ReleaseDecision
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Lock(ctx, tx.DB(), roomID); err != nil {
			return err
		}
		r, err := loadRoom(ctx, tx.Reads(), roomID)
		if err != nil {
			return err
		}
		snaps, err := tx.Reads().LiveStaysForRoom(ctx, roomID, nil)
		if err != nil {
			return err
		}
		stays, err := staysFromSnapshots(snaps)
		if err != nil {
			return err
		}

		decision = r.DecideRelease(booking.AnyCovers(stays, today))
		if decision != room.Release {
			return nil
		}
		return tx.Rooms().UpdateOccupancy(ctx, tx.DB(), roomID, room.OccupancyAvailable)
	})
	return decision, err
}
