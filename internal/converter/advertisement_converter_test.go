package converter

import (
	"testing"
	"time"

	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
	"hello-doctors/pkg/storage"
)

func adConverterForTest() *AdvertisementConverter {
	resolver := service.NewImageResolver("http://example.com", storage.NewDisk("/tmp", "http://example.com/uploads"))
	return NewAdvertisementConverter(resolver)
}

func TestAdToResponse_LiveWindow(t *testing.T) {
	c := adConverterForTest()
	active := true
	ad := &entity.Advertisement{
		ID:        3,
		Title:     "Banner",
		Position:  entity.AdPositionHomeTop,
		StartDate: time.Now().AddDate(0, 0, -1),
		IsActive:  &active,
	}

	resp := c.ToResponse(ad)
	if !resp.IsLive {
		t.Error("ad inside its window should report is_live")
	}
}

func TestAdToResponse_ExpiredWindow(t *testing.T) {
	c := adConverterForTest()
	active := true
	end := time.Now().AddDate(0, 0, -2)
	ad := &entity.Advertisement{
		Title:     "Banner",
		Position:  entity.AdPositionHomeTop,
		StartDate: end.AddDate(0, 0, -10),
		EndDate:   &end,
		IsActive:  &active,
	}

	resp := c.ToResponse(ad)
	if resp.IsLive {
		t.Error("ad past its end date should not report is_live")
	}
	if resp.EndDate == nil || *resp.EndDate != end.Format("2006-01-02") {
		t.Errorf("EndDate = %v, want %s", resp.EndDate, end.Format("2006-01-02"))
	}
}

func TestAdToResponse_DateFormatting(t *testing.T) {
	c := adConverterForTest()
	ad := &entity.Advertisement{
		Title:     "Banner",
		Position:  entity.AdPositionSidebar,
		StartDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	resp := c.ToResponse(ad)
	if resp.StartDate != "2025-03-09" {
		t.Errorf("StartDate = %q, want 2025-03-09", resp.StartDate)
	}
	if resp.EndDate != nil {
		t.Errorf("EndDate = %v, want nil for open-ended ad", *resp.EndDate)
	}
	if resp.IsLive {
		t.Error("inactive ad should not report is_live")
	}
}
