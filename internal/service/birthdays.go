package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/MKhiriev/go-contacts-book/models"
)

// nextBirthday returns the first anniversary of dob on or after today.
// Birth year is ignored.
func nextBirthday(dob, today models.Date) models.Date {
	next := birthdayIn(dob, today.Year())
	if next.Before(today) {
		next = birthdayIn(dob, today.Year()+1)
	}
	return next
}

// birthdayIn returns the anniversary of dob in year. A Feb 29 birthday
// falls on Feb 28 in common years.
func birthdayIn(dob models.Date, year int) models.Date {
	if dob.Month() == time.February && dob.Day() == 29 && !isLeapYear(year) {
		return models.NewDate(year, time.February, 28)
	}
	return models.NewDate(year, dob.Month(), dob.Day())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// upcomingBirthdays keeps the contacts whose next birthday is within
// [today, today+days] and sorts them by that birthday, then by id.
func upcomingBirthdays(contacts []models.Contact, today models.Date, days int) []models.Contact {
	type upcoming struct {
		contact models.Contact
		next    models.Date
	}

	last := today.AddDays(days)
	matched := make([]upcoming, 0, len(contacts))
	for _, c := range contacts {
		if c.DateOfBirth.IsZero() {
			continue
		}
		next := nextBirthday(c.DateOfBirth, today)
		if next.After(last) {
			continue
		}
		matched = append(matched, upcoming{contact: c, next: next})
	}

	slices.SortFunc(matched, func(a, b upcoming) int {
		if c := a.next.Compare(b.next.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.contact.ID, b.contact.ID)
	})

	result := make([]models.Contact, len(matched))
	for i, m := range matched {
		result[i] = m.contact
	}
	return result
}
