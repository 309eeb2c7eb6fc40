package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// The persistence collaborator sends plain dates, older rows carry a
	// timestamp without timezone. Try both before giving up.
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// Date is a calendar day, serialized as "2006-01-02".
type Date struct {
	Date time.Time
}

func NewDate(t time.Time) Date {
	return Date{Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseFecha(str string) (Date, error) {
	parsed, err := parseDate(str)
	if err != nil {
		return Date{}, err
	}
	return NewDate(parsed), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*d = NewDate(parsedDate)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Date.Format("2006-01-02"))
}

func (d Date) String() string {
	return d.Date.Format("2006-01-02")
}

func (d Date) IsZero() bool {
	return d.Date.IsZero()
}

// Igual compares day identity, ignoring time-of-day.
func (d Date) Igual(otra Date) bool {
	return d.Date.Year() == otra.Date.Year() &&
		d.Date.Month() == otra.Date.Month() &&
		d.Date.Day() == otra.Date.Day()
}

func (d Date) Antes(otra Date) bool {
	return !d.Igual(otra) && d.Date.Before(otra.Date)
}
