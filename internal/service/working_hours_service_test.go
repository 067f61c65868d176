package service

import (
	"context"
	"testing"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hoursFixture struct {
	svc   WorkingHoursService
	hours *stubWorkingHoursRepo
	users *stubUserRepo
}

func newHoursFixture() *hoursFixture {
	f := &hoursFixture{
		hours: newStubWorkingHoursRepo(),
		users: newStubUserRepo(),
	}
	f.svc = NewWorkingHoursService(f.hours, f.users)
	return f
}

func (f *hoursFixture) seedWerknemer(t *testing.T, email string, createdAt time.Time) *model.User {
	t.Helper()
	u := &model.User{
		Email:     email,
		IsActive:  true,
		CreatedAt: createdAt,
		Roles:     []model.Role{{Name: "werknemer"}},
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	u.CreatedAt = createdAt
	return u
}

func (f *hoursFixture) seedEntry(t *testing.T, userID uint, day time.Time, hours float64, milkings int, submitted bool) {
	t.Helper()
	require.NoError(t, f.hours.Create(context.Background(), &model.WorkingHours{
		Date: day, Hours: hours, Milkings: milkings,
		Submitted: submitted, CreatedBy: "test", UserID: userID,
	}))
}

func TestUpsertCreatesEntry(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))

	resp, err := f.svc.Upsert(context.Background(), user, dto.UpsertWorkingHoursRequest{
		Date:     "2024-01-08",
		Hours:    floatPtr(7.5),
		Milkings: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", resp.Date)
	assert.Equal(t, 7.5, resp.Hours)
	assert.Equal(t, "7:30", resp.HoursFormatted)
	assert.Equal(t, 2, resp.Milkings)
	assert.False(t, resp.Submitted)
	assert.Equal(t, "jan@example.com", resp.CreatedBy)
}

func TestUpsertUpdatesExistingEntryPartially(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.January, 8), 6, 1, false)

	resp, err := f.svc.Upsert(context.Background(), user, dto.UpsertWorkingHoursRequest{
		Date:      "2024-01-08",
		Submitted: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 6.0, resp.Hours)
	assert.Equal(t, 1, resp.Milkings)
	assert.True(t, resp.Submitted)
}

func TestMyWeekOverviewNewestWeekFirst(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	// 2024-01-08 is the Monday of ISO week 2 of 2024.
	f.seedEntry(t, user.ID, date(2024, time.January, 8), 8, 0, true)
	f.seedEntry(t, user.ID, date(2024, time.January, 9), 4.5, 2, true)
	f.seedEntry(t, user.ID, date(2024, time.January, 15), 6, 0, false)

	weeks, err := f.svc.MyWeekOverview(context.Background(), user, date(2024, time.January, 8), date(2024, time.January, 21))
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	assert.Equal(t, 3, weeks[0].Week)
	assert.Equal(t, 2, weeks[1].Week)

	week2 := weeks[1]
	assert.Equal(t, 2024, week2.Year)
	assert.Equal(t, "2024-01-08", week2.WeekStart)
	assert.Equal(t, "2024-01-14", week2.WeekEnd)
	assert.Equal(t, 12.5, week2.SumHours)
	assert.Equal(t, 2, week2.SumMilkings)
	require.NotNil(t, week2.Submitted)
	assert.True(t, *week2.Submitted)

	// Week 3 has an unsubmitted entry.
	require.NotNil(t, weeks[0].Submitted)
	assert.False(t, *weeks[0].Submitted)
}

func TestWeekSubmittedTernary(t *testing.T) {
	f := newHoursFixture()
	// Account created in week 3 of 2024.
	user := f.seedWerknemer(t, "jan@example.com", date(2024, time.January, 16))
	f.seedEntry(t, user.ID, date(2024, time.January, 16), 8, 0, true)

	weeks, err := f.svc.MyWeekOverview(context.Background(), user, date(2024, time.January, 1), date(2024, time.January, 28))
	require.NoError(t, err)
	require.Len(t, weeks, 4)

	// Newest first: week 4, 3, 2, 1.
	week4, week3, week2, week1 := weeks[0], weeks[1], weeks[2], weeks[3]

	// Weeks that ended before the account existed report no status at all.
	assert.Nil(t, week1.Submitted)
	assert.Nil(t, week2.Submitted)

	require.NotNil(t, week3.Submitted)
	assert.True(t, *week3.Submitted)

	// An empty week after account creation counts as not submitted.
	require.NotNil(t, week4.Submitted)
	assert.False(t, *week4.Submitted)
}

func TestWeekOverviewForUserNestsEmployee(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.January, 8), 8, 0, true)

	overview, err := f.svc.WeekOverviewForUser(context.Background(), user.ID, date(2024, time.January, 8), date(2024, time.January, 21))
	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", overview.Werknemer.Email)
	require.Len(t, overview.WeekData, 2)
	// Oldest first in the admin view.
	assert.Equal(t, 2, overview.WeekData[0].Week)
	assert.Equal(t, 3, overview.WeekData[1].Week)
}

func TestWeekOverviewForUnknownUser(t *testing.T) {
	f := newHoursFixture()

	_, err := f.svc.WeekOverviewForUser(context.Background(), 99, date(2024, time.January, 8), date(2024, time.January, 14))
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "De gebruiker waarvoor de uren zijn ingediend is niet bekend", apiErr.Detail)
}

func TestAdminWeekOverviewCoversActiveWerknemers(t *testing.T) {
	f := newHoursFixture()
	jan := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	piet := f.seedWerknemer(t, "piet@example.com", date(2023, time.June, 1))
	f.seedEntry(t, jan.ID, date(2024, time.January, 8), 8, 0, true)

	weeks, err := f.svc.AdminWeekOverview(context.Background(), date(2024, time.January, 8), date(2024, time.January, 14))
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2, weeks[0].Week)
	require.Len(t, weeks[0].EmployeeInfo, 2)

	byID := map[uint]dto.EmployeeWeekInfo{}
	for _, info := range weeks[0].EmployeeInfo {
		byID[info.UserID] = info
	}
	require.NotNil(t, byID[jan.ID].Submitted)
	assert.True(t, *byID[jan.ID].Submitted)
	assert.Equal(t, 8.0, byID[jan.ID].SumHours)
	require.NotNil(t, byID[piet.ID].Submitted)
	assert.False(t, *byID[piet.ID].Submitted)
}

func TestInvalidDateRange(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))

	_, err := f.svc.MyWeekOverview(context.Background(), user, date(2024, time.February, 1), date(2024, time.January, 1))
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Van datum moet voor tot datum zijn", apiErr.Detail)
}

func TestYearOverviewZeroFillsAllMonths(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.March, 5), 8, 1, true)
	f.seedEntry(t, user.ID, date(2024, time.March, 6), 2, 0, false)
	f.seedEntry(t, user.ID, date(2023, time.March, 6), 5, 0, true) // other year

	months, err := f.svc.YearOverview(context.Background(), user.ID, 2024)
	require.NoError(t, err)
	require.Len(t, months, 12)

	assert.Equal(t, "januari", months[0].Month)
	assert.Equal(t, "december", months[11].Month)
	assert.Equal(t, 0.0, months[0].Hours)

	maart := months[2]
	assert.Equal(t, "maart", maart.Month)
	assert.Equal(t, 10.0, maart.Hours)
	assert.Equal(t, 1, maart.Milkings)
}

func TestMonthOverviewCountsSubmittedOnly(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.March, 5), 8, 1, true)
	f.seedEntry(t, user.ID, date(2024, time.March, 6), 2, 3, false)

	sums, err := f.svc.MonthOverviewForYear(context.Background(), user.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, 8.0, sums.Hours[3])
	assert.Equal(t, 1, sums.Milkings[3])
	_, ok := sums.Hours[4]
	assert.False(t, ok)
}

func TestReleaseResetsSubmitted(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.January, 8), 8, 0, true)
	f.seedEntry(t, user.ID, date(2024, time.January, 9), 6, 0, true)

	err := f.svc.Release(context.Background(), dto.ReleaseRequest{
		UserID: user.ID, FromDate: "2024-01-08", ToDate: "2024-01-09",
	})
	require.NoError(t, err)

	for _, day := range []time.Time{date(2024, time.January, 8), date(2024, time.January, 9)} {
		entry, err := f.hours.FindByUserAndDate(context.Background(), user.ID, day)
		require.NoError(t, err)
		assert.False(t, entry.Submitted)
	}
}

func TestReleaseMissingDateNamesDate(t *testing.T) {
	f := newHoursFixture()
	user := f.seedWerknemer(t, "jan@example.com", date(2023, time.June, 1))
	f.seedEntry(t, user.ID, date(2024, time.January, 8), 8, 0, true)

	err := f.svc.Release(context.Background(), dto.ReleaseRequest{
		UserID: user.ID, FromDate: "2024-01-08", ToDate: "2024-01-09",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Werkuren voor 09-01-2024 zijn niet gevonden", apiErr.Detail)
}

func TestIsoWeekStart(t *testing.T) {
	// Week 1 of 2024 starts on 2024-01-01; week 1 of 2021 starts in 2020.
	assert.Equal(t, date(2024, time.January, 1), isoWeekStart(2024, 1))
	assert.Equal(t, date(2024, time.January, 8), isoWeekStart(2024, 2))
	assert.Equal(t, date(2021, time.January, 4), isoWeekStart(2021, 1))
	assert.Equal(t, date(2020, time.December, 30).AddDate(0, 0, -2), isoWeekStart(2020, 53))
}

func TestIsoWeeksInRangeSpansYearBoundary(t *testing.T) {
	// 2020-12-28..2021-01-10 covers exactly week 53 of 2020 and week 1 of
	// 2021; one more day reaches the Monday that opens week 2.
	weeks := isoWeeksInRange(date(2020, time.December, 28), date(2021, time.January, 10))
	require.Len(t, weeks, 2)
	assert.Equal(t, isoWeek{year: 2020, week: 53}, weeks[0])
	assert.Equal(t, isoWeek{year: 2021, week: 1}, weeks[1])

	weeks = isoWeeksInRange(date(2020, time.December, 28), date(2021, time.January, 11))
	require.Len(t, weeks, 3)
	assert.Equal(t, isoWeek{year: 2021, week: 2}, weeks[2])
}
