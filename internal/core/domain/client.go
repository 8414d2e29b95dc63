package domain

import "time"

// Goal selects the macro coefficient set applied to a client's weight.
type Goal string

const (
	GoalWeightLoss        Goal = "Weight Loss"
	GoalWeightGain        Goal = "Weight Gain"
	GoalMuscleBuilding    Goal = "Muscle Building"
	GoalWeightMaintenance Goal = "Weight Maintenance"
)

// Valid reports whether g is one of the known goals. The empty goal is valid
// and falls back to the default coefficients.
func (g Goal) Valid() bool {
	switch g {
	case "", GoalWeightLoss, GoalWeightGain, GoalMuscleBuilding, GoalWeightMaintenance:
		return true
	}
	return false
}

// WeightSample is a single entry in a client's weight history.
type WeightSample struct {
	Weight     float64   `json:"weight" bson:"weight"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}

// Client is a trainee whose diet targets are derived from their latest weight.
// ID is serialized as "name" to match the dashboard's document shape.
type Client struct {
	ID                 string         `json:"name" bson:"_id"`
	ClientName         string         `json:"client_name" bson:"client_name"`
	Email              string         `json:"email,omitempty" bson:"email,omitempty"`
	Mobile             string         `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Location           string         `json:"location,omitempty" bson:"location,omitempty"`
	Image              string         `json:"image,omitempty" bson:"image,omitempty"`
	DateOfBirth        *time.Time     `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Height             float64        `json:"height" bson:"height"`
	Gender             string         `json:"gender,omitempty" bson:"gender,omitempty"`
	Goal               Goal           `json:"goal,omitempty" bson:"goal,omitempty"`
	WeightGoal         float64        `json:"weight_goal,omitempty" bson:"weight_goal,omitempty"`
	WorkoutPreference  string         `json:"workout_preference,omitempty" bson:"workout_preference,omitempty"`
	WorkoutSplit       string         `json:"workout_split,omitempty" bson:"workout_split,omitempty"`
	MealSplit          string         `json:"meal_split,omitempty" bson:"meal_split,omitempty"`
	RecoveryPreference string         `json:"recovery_preference,omitempty" bson:"recovery_preference,omitempty"`
	Multiplier         float64        `json:"multiplier" bson:"multiplier"`
	WeightLog          []WeightSample `json:"weight_log" bson:"weight_log"`

	// Derived on every save.
	Age           int       `json:"age" bson:"age"`
	ProteinTarget float64   `json:"protein_target" bson:"protein_target"`
	CarbTarget    float64   `json:"carb_target" bson:"carb_target"`
	FatTarget     float64   `json:"fat_target" bson:"fat_target"`
	EnergyTarget  float64   `json:"energy_target" bson:"energy_target"`
	WaterTarget   float64   `json:"water_target" bson:"water_target"`
	LastUpdated   time.Time `json:"last_updated" bson:"last_updated"`

	CreatedAt time.Time `json:"creation" bson:"created_at"`
	UpdatedAt time.Time `json:"modified" bson:"updated_at"`

	// Revision is bumped on every save; a save carrying a stale revision is
	// rejected with ErrConflict.
	Revision int64 `json:"-" bson:"revision"`
}

// LastWeight returns the most recent weight sample, or DefaultWeightKg when
// the history is empty.
func (c *Client) LastWeight() float64 {
	if len(c.WeightLog) == 0 {
		return DefaultWeightKg
	}
	return c.WeightLog[len(c.WeightLog)-1].Weight
}

// AppendWeight records a new sample at the end of the history.
func (c *Client) AppendWeight(weight float64, at time.Time) {
	c.WeightLog = append(c.WeightLog, WeightSample{Weight: weight, RecordedAt: at})
}

// Validate recomputes every derived field. It never fails: missing inputs fall
// back to their defaults.
func (c *Client) Validate(now time.Time) {
	if c.DateOfBirth != nil {
		c.Age = AgeAt(*c.DateOfBirth, now)
	}

	t := CalculateTargets(c.LastWeight(), c.Goal, c.Multiplier)
	c.ProteinTarget = t.Protein
	c.CarbTarget = t.Carb
	c.FatTarget = t.Fat
	c.EnergyTarget = t.Energy
	c.WaterTarget = t.Water
	c.LastUpdated = now
}

// Clone returns a deep copy, so callers can keep a before-image of the record.
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	out := *c
	if c.DateOfBirth != nil {
		dob := *c.DateOfBirth
		out.DateOfBirth = &dob
	}
	if c.WeightLog != nil {
		out.WeightLog = make([]WeightSample, len(c.WeightLog))
		copy(out.WeightLog, c.WeightLog)
	}
	return &out
}
