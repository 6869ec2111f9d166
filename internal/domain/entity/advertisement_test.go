package entity

import (
	"testing"
	"time"
)

func adForTest(active bool, start time.Time, end *time.Time) *Advertisement {
	return &Advertisement{
		Title:     "Banner",
		Position:  AdPositionHomeTop,
		StartDate: start,
		EndDate:   end,
		IsActive:  &active,
	}
}

func TestIsLiveOn_WithinWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 10)
	ad := adForTest(true, now.AddDate(0, 0, -10), &end)
	if !ad.IsLiveOn(now) {
		t.Error("ad inside its window should be live")
	}
}

func TestIsLiveOn_EndsToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ad := adForTest(true, end.AddDate(0, 0, -5), &end)
	if !ad.IsLiveOn(now) {
		t.Error("ad ending today should still be live")
	}
}

func TestIsLiveOn_Expired(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, -1)
	ad := adForTest(true, now.AddDate(0, 0, -10), &end)
	if ad.IsLiveOn(now) {
		t.Error("ad past its end date should not be live")
	}
}

func TestIsLiveOn_NotStarted(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ad := adForTest(true, now.AddDate(0, 0, 1), nil)
	if ad.IsLiveOn(now) {
		t.Error("ad starting tomorrow should not be live")
	}
}

func TestIsLiveOn_StartsToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	ad := adForTest(true, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), nil)
	if !ad.IsLiveOn(now) {
		t.Error("ad starting today should be live")
	}
}

func TestIsLiveOn_OpenEnded(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ad := adForTest(true, now.AddDate(0, -6, 0), nil)
	if !ad.IsLiveOn(now) {
		t.Error("open-ended ad should stay live")
	}
}

func TestIsLiveOn_Inactive(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ad := adForTest(false, now.AddDate(0, 0, -10), nil)
	if ad.IsLiveOn(now) {
		t.Error("inactive ad should never be live")
	}
}

func TestIsLiveOn_NilActiveFlag(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	ad := &Advertisement{StartDate: now.AddDate(0, 0, -1)}
	if ad.IsLiveOn(now) {
		t.Error("nil IsActive should read as inactive")
	}
}
