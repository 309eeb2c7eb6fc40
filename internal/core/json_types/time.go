package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day, serialized as "15:04".
type TimeOfDay struct {
	Time time.Time
}

func NewTimeOfDay(hora, minuto int) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, time.January, 1, hora, minuto, 0, 0, time.UTC)}
}

func ParseHora(str string) (TimeOfDay, error) {
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		// Some collaborator endpoints include seconds
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("failed to parse time: %v", err)
		}
	}
	return NewTimeOfDay(parsedTime.Hour(), parsedTime.Minute()), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	str := string(data[1 : len(data)-1])
	parsed, err := ParseHora(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

func (t TimeOfDay) String() string {
	return t.Time.Format("15:04")
}

func (t TimeOfDay) IsZero() bool {
	return t.Time.IsZero()
}

// Minutos returns the time as minutes since midnight, the unit the slot
// grid arithmetic works in.
func (t TimeOfDay) Minutos() int {
	return t.Time.Hour()*60 + t.Time.Minute()
}

func DesdeMinutos(minutos int) TimeOfDay {
	return NewTimeOfDay(minutos/60, minutos%60)
}

func (t TimeOfDay) Igual(otra TimeOfDay) bool {
	return t.Minutos() == otra.Minutos()
}

func (t TimeOfDay) Antes(otra TimeOfDay) bool {
	return t.Minutos() < otra.Minutos()
}
