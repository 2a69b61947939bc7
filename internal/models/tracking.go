package models

import (
	"encoding/json"
	"time"
)

type SleepEntry struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	EntryDate    Date       `json:"entryDate"`
	BedTime      *time.Time `json:"bedTime"`
	WakeTime     *time.Time `json:"wakeTime"`
	TotalSleep   *int       `json:"totalSleep"`
	DeepSleep    *int       `json:"deepSleep"`
	RemSleep     *int       `json:"remSleep"`
	LightSleep   *int       `json:"lightSleep"`
	AwakeTime    *int       `json:"awakeTime"`
	SleepQuality *string    `json:"sleepQuality"`
	SleepScore   *int       `json:"sleepScore"`
	AvgHeartRate *int       `json:"avgHeartRate"`
	MinHeartRate *int       `json:"minHeartRate"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type BodyEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	EntryDate    Date      `json:"entryDate"`
	Weight       *float64  `json:"weight"`
	BodyFat      *float64  `json:"bodyFat"`
	VisceralFat  *int      `json:"visceralFat"`
	MuscleMass   *float64  `json:"muscleMass"`
	BoneMass     *float64  `json:"boneMass"`
	BodyWater    *float64  `json:"bodyWater"`
	BMI          *float64  `json:"bmi"`
	BMR          *int      `json:"bmr"`
	MetabolicAge *int      `json:"metabolicAge"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BloodPressureEntry struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"userId"`
	EntryDate       Date       `json:"entryDate"`
	MeasurementTime *time.Time `json:"measurementTime"`
	Systolic        int        `json:"systolic"`
	Diastolic       int        `json:"diastolic"`
	Pulse           *int       `json:"pulse"`
	Position        *string    `json:"position"`
	Arm             *string    `json:"arm"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type NutritionEntry struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	EntryDate   Date       `json:"entryDate"`
	MealType    *string    `json:"mealType"`
	MealTime    *time.Time `json:"mealTime"`
	Description *string    `json:"description"`
	Calories    *int       `json:"calories"`
	Protein     *float64   `json:"protein"`
	Carbs       *float64   `json:"carbs"`
	Fat         *float64   `json:"fat"`
	Fiber       *float64   `json:"fiber"`
	Sugar       *float64   `json:"sugar"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// WaterEntry rows are append-only: they are inserted and deleted, never updated.
type WaterEntry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	EntryDate Date       `json:"entryDate"`
	EntryTime *time.Time `json:"entryTime"`
	Amount    int        `json:"amount"`
	CreatedAt time.Time  `json:"createdAt"`
}

type TrainingEntry struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	EntryDate      Date            `json:"entryDate"`
	WorkoutType    string          `json:"workoutType"`
	StartTime      *time.Time      `json:"startTime"`
	Duration       *int            `json:"duration"`
	CaloriesBurned *int            `json:"caloriesBurned"`
	AvgHeartRate   *int            `json:"avgHeartRate"`
	MaxHeartRate   *int            `json:"maxHeartRate"`
	Distance       *float64        `json:"distance"`
	Steps          *int            `json:"steps"`
	Intensity      *string         `json:"intensity"`
	Exercises      json.RawMessage `json:"exercises"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type SaunaEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	EntryDate    Date      `json:"entryDate"`
	SaunaType    *string   `json:"saunaType"`
	Duration     int       `json:"duration"`
	Temperature  *int      `json:"temperature"`
	Rounds       *int      `json:"rounds"`
	ColdPlunge   *bool     `json:"coldPlunge"`
	ColdDuration *int      `json:"coldDuration"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DailySummary is unique per (user, entry date).
type DailySummary struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	EntryDate     Date      `json:"entryDate"`
	Mood          *string   `json:"mood"`
	EnergyLevel   *int      `json:"energyLevel"`
	StressLevel   *int      `json:"stressLevel"`
	GoalsAchieved *int      `json:"goalsAchieved"`
	TotalGoals    *int      `json:"totalGoals"`
	Gratitude     *string   `json:"gratitude"`
	Wins          *string   `json:"wins"`
	Challenges    *string   `json:"challenges"`
	TomorrowFocus *string   `json:"tomorrowFocus"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
