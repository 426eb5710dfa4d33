package timelang

import "testing"

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		month   Month
		day     DayOfMonth
		year    Year
		wantErr bool
	}{
		{"ordinary day", April, 20, 2021, false},
		{"31st of a long month", January, 31, 2023, false},
		{"31st of a short month", April, 31, 2023, true},
		{"30th of february", February, 30, 2023, true},
		{"leap day in a leap year", February, 29, 2024, false},
		{"leap day in a common year", February, 29, 2023, true},
		{"leap day on a century", February, 29, 1900, true},
		{"leap day on a quadricentennial", February, 29, 2000, false},
		{"day zero", March, 0, 1993, true},
		{"day thirty-two", March, 32, 1993, true},
		{"month zero", Month(0), 1, 2020, true},
		{"month thirteen", Month(13), 1, 2020, true},
		{"year zero", June, 15, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDate(tt.month, tt.day, tt.year)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDate(%v, %v, %v) error = %v, wantErr %v", tt.month, tt.day, tt.year, err, tt.wantErr)
			}
			if err == nil {
				want := Date{Month: tt.month, Day: tt.day, Year: tt.year}
				if got != want {
					t.Errorf("NewDate(%v, %v, %v) = %v, want %v", tt.month, tt.day, tt.year, got, want)
				}
			}
		})
	}
}

func TestNewHour(t *testing.T) {
	if _, err := NewHour24(23); err != nil {
		t.Errorf("NewHour24(23) error = %v", err)
	}
	if _, err := NewHour24(24); err == nil {
		t.Error("NewHour24(24) expected error")
	}
	if _, err := NewHour12(12, AM); err != nil {
		t.Errorf("NewHour12(12, AM) error = %v", err)
	}
	if _, err := NewHour12(0, AM); err == nil {
		t.Error("NewHour12(0, AM) expected error")
	}
	if _, err := NewHour12(13, PM); err == nil {
		t.Error("NewHour12(13, PM) expected error")
	}
	if _, err := NewMinute(59); err != nil {
		t.Errorf("NewMinute(59) error = %v", err)
	}
	if _, err := NewMinute(60); err == nil {
		t.Error("NewMinute(60) expected error")
	}
}

func TestDurationAdd(t *testing.T) {
	a := Duration{Years: 1, Days: 3, Minutes: 10}
	b := Duration{Months: 2, Days: 4, Minutes: 5}
	want := Duration{Years: 1, Months: 2, Days: 7, Minutes: 15}
	if got := a.Add(b); got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
	if !(Duration{}).IsZero() {
		t.Error("zero Duration should report IsZero")
	}
	if (Duration{Weeks: 1}).IsZero() {
		t.Error("nonzero Duration should not report IsZero")
	}
}

func TestStructuralEquality(t *testing.T) {
	a := TimeExpression(Directional{
		Duration: Duration{Days: 3},
		Dir:      Ago{},
	})
	b := TimeExpression(Directional{
		Duration: Duration{Days: 3},
		Dir:      Ago{},
	})
	if a != b {
		t.Error("identical directional values should compare equal")
	}

	// The two clock forms describe the same reading but are distinct values.
	twelve := Time{Hour: Hour12{Value: 2, AmPm: PM}, Minute: 0}
	twentyFour := Time{Hour: Hour24(14), Minute: 0}
	if twelve == twentyFour {
		t.Error("12-hour and 24-hour forms must not compare equal")
	}
	if twelve.Compare(twentyFour) != 0 {
		t.Error("2:00 PM and 14:00 should order equal")
	}
}

func TestCompare(t *testing.T) {
	d1 := Date{Month: January, Day: 1, Year: 2023}
	d2 := Date{Month: December, Day: 31, Year: 2022}
	if got := d1.Compare(d2); got != 1 {
		t.Errorf("Compare = %d, want 1", got)
	}
	if got := d2.Compare(d1); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if got := d1.Compare(d1); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}

	midnight := Time{Hour: Hour12{Value: 12, AmPm: AM}, Minute: 0}
	one := Time{Hour: Hour24(1), Minute: 0}
	if got := midnight.Compare(one); got != -1 {
		t.Errorf("12:00 AM should order before 1:00, got %d", got)
	}
	noon := Time{Hour: Hour12{Value: 12, AmPm: PM}, Minute: 30}
	if got := noon.Compare(Time{Hour: Hour24(12), Minute: 30}); got != 0 {
		t.Errorf("12:30 PM should order equal to 12:30, got %d", got)
	}

	dt1 := DateTime{Date: d2, Time: one}
	dt2 := DateTime{Date: d1, Time: midnight}
	if got := dt1.Compare(dt2); got != -1 {
		t.Errorf("earlier date should win regardless of time, got %d", got)
	}
}
