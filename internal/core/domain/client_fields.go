package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldWeightLog is the one field whose update appends instead of overwriting.
const FieldWeightLog = "weight_log"

const dateLayout = "2006-01-02"

type fieldSetter func(c *Client, value string) error

var writableFields = map[string]fieldSetter{
	"client_name":         setString(func(c *Client) *string { return &c.ClientName }),
	"email":               setString(func(c *Client) *string { return &c.Email }),
	"mobile":              setString(func(c *Client) *string { return &c.Mobile }),
	"location":            setString(func(c *Client) *string { return &c.Location }),
	"image":               setString(func(c *Client) *string { return &c.Image }),
	"gender":              setString(func(c *Client) *string { return &c.Gender }),
	"workout_preference":  setString(func(c *Client) *string { return &c.WorkoutPreference }),
	"workout_split":       setString(func(c *Client) *string { return &c.WorkoutSplit }),
	"meal_split":          setString(func(c *Client) *string { return &c.MealSplit }),
	"recovery_preference": setString(func(c *Client) *string { return &c.RecoveryPreference }),
	"height":              setFloat(func(c *Client) *float64 { return &c.Height }),
	"weight_goal":         setFloat(func(c *Client) *float64 { return &c.WeightGoal }),
	"multiplier":          setFloat(func(c *Client) *float64 { return &c.Multiplier }),
	"goal":                setGoal,
	"date_of_birth":       setDateOfBirth,
}

var readOnlyFields = map[string]struct{}{
	"name":           {},
	"age":            {},
	"protein_target": {},
	"carb_target":    {},
	"fat_target":     {},
	"energy_target":  {},
	"water_target":   {},
	"last_updated":   {},
	"creation":       {},
	"modified":       {},
}

// IsClientField reports whether name is a known client field, writable or not.
func IsClientField(name string) bool {
	if name == FieldWeightLog {
		return true
	}
	if _, ok := writableFields[name]; ok {
		return true
	}
	_, ok := readOnlyFields[name]
	return ok
}

// SetField assigns a raw string value to the named field. A weight_log update
// appends a sample recorded at now. Derived fields are rejected.
func (c *Client) SetField(field, value string, now time.Time) error {
	if field == FieldWeightLog {
		w, err := ParseWeight(value)
		if err != nil {
			return err
		}
		c.AppendWeight(w, now)
		return nil
	}
	if _, ok := readOnlyFields[field]; ok {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, field)
	}
	set, ok := writableFields[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return set(c, value)
}

// ParseWeight parses a weight in kg. It must be a finite positive number.
func ParseWeight(value string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, fmt.Errorf("%w: weight %q", ErrInvalidValue, value)
	}
	return w, nil
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidValue, value)
	}
	return t.UTC(), nil
}

func setString(field func(*Client) *string) fieldSetter {
	return func(c *Client, value string) error {
		*field(c) = value
		return nil
	}
}

func setFloat(field func(*Client) *float64) fieldSetter {
	return func(c *Client, value string) error {
		if strings.TrimSpace(value) == "" {
			*field(c) = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: number %q", ErrInvalidValue, value)
		}
		*field(c) = f
		return nil
	}
}

func setGoal(c *Client, value string) error {
	g := Goal(value)
	if !g.Valid() {
		return fmt.Errorf("%w: goal %q", ErrInvalidValue, value)
	}
	c.Goal = g
	return nil
}

func setDateOfBirth(c *Client, value string) error {
	if strings.TrimSpace(value) == "" {
		c.DateOfBirth = nil
		return nil
	}
	dob, err := ParseDate(value)
	if err != nil {
		return err
	}
	c.DateOfBirth = &dob
	return nil
}
