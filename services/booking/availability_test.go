package booking

import (
	"context"
	"reflect"
	"testing"
	"time"

	"salonbook/models"
)

// 2026-03-02 is a Monday.
const (
	testDate    = "2026-03-02"
	testStaffID = "stf-1"
	testSvcID   = "svc-cut"
	testCustID  = "cus-1"
)

func newTestService(t *testing.T) (*DefaultBookingService, *memScheduler) {
	t.Helper()

	staff := &fakeStaffRepo{staff: map[string]models.StaffMember{
		testStaffID: {
			ID:   testStaffID,
			Name: "Dana",
			WorkingHours: []models.WorkingHoursEntry{
				{Weekday: 1, IsWorking: true, OpenTime: "09:00", CloseTime: "18:00", BreakStart: "12:00", BreakEnd: "13:00"},
				{Weekday: 2, IsWorking: false},
			},
		},
	}}
	catalog := &fakeCatalogRepo{services: map[string]models.Service{
		testSvcID: {ID: testSvcID, Name: "Haircut", DurationMinutes: 60, Price: 45},
	}}
	customers := &fakeCustomerRepo{customers: map[string]models.Customer{
		testCustID: {ID: testCustID, Name: "Alex", Phone: "+15550100", Email: "alex@example.com"},
	}}
	sched := newMemScheduler()

	svc := &DefaultBookingService{
		StaffRepo:      staff,
		CatalogRepo:    catalog,
		CustomerRepo:   customers,
		Scheduler:      sched,
		GranularityMin: 30,
		Clock: func() time.Time {
			return time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
		},
	}
	return svc, sched
}

func TestGetAvailableSlots(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	sched.bookings["b-1"] = models.Booking{
		ID: "b-1", StaffMemberID: testStaffID, Date: testDate,
		Start: 600, End: 660, Status: models.StatusConfirmed,
	}

	slots, err := svc.GetAvailableSlots(ctx, testStaffID, testSvcID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"09:00", "11:00",
		"13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00", "16:30", "17:00",
	}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Errorf("slot starts = %v, want %v", got, want)
	}
}

func TestGetAvailableSlotsCancelledBookingFreesSlot(t *testing.T) {
	svc, sched := newTestService(t)
	ctx := context.Background()

	sched.bookings["b-1"] = models.Booking{
		ID: "b-1", StaffMemberID: testStaffID, Date: testDate,
		Start: 600, End: 660, Status: models.StatusCancelled,
	}

	slots, err := svc.GetAvailableSlots(ctx, testStaffID, testSvcID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s.StartTime == "10:00" {
			return
		}
	}
	t.Errorf("expected 10:00 to be offered over a cancelled booking, got %v", slotStarts(slots))
}

func TestGetAvailableSlotsNonWorkingDay(t *testing.T) {
	svc, _ := newTestService(t)

	// 2026-03-03 is a Tuesday, configured as a day off; 2026-03-04 has no
	// entry at all. Both yield an empty list, not an error.
	for _, date := range []string{"2026-03-03", "2026-03-04"} {
		slots, err := svc.GetAvailableSlots(context.Background(), testStaffID, testSvcID, date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", date, err)
		}
		if slots == nil || len(slots) != 0 {
			t.Errorf("%s: expected empty slice, got %v", date, slots)
		}
	}
}

func TestGetAvailableSlotsUnknownStaff(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetAvailableSlots(context.Background(), "stf-missing", testSvcID, testDate)
	if CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestGetAvailableSlotsUnknownService(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetAvailableSlots(context.Background(), testStaffID, "svc-missing", testDate)
	if CodeOf(err) != CodeNotFound {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestGetAvailableSlotsBadDate(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetAvailableSlots(context.Background(), testStaffID, testSvcID, "03/02/2026")
	if CodeOf(err) != CodeInvalidArgument {
		t.Errorf("expected invalidArgument, got %v", err)
	}
}

func TestGetAvailableSlotsIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.GetAvailableSlots(ctx, testStaffID, testSvcID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetAvailableSlots(ctx, testStaffID, testSvcID, testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query diverged: %v vs %v", first, second)
	}
}
