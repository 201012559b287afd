package domain

type EnergyPeak string

const (
	EnergyMorning   EnergyPeak = "Morning"
	EnergyAfternoon EnergyPeak = "Afternoon"
	EnergyEvening   EnergyPeak = "Evening"
	EnergyNight     EnergyPeak = "Night"
)

// ValidEnergyPeaks is the canonical set of accepted energy peak strings.
var ValidEnergyPeaks = map[EnergyPeak]bool{
	EnergyMorning: true, EnergyAfternoon: true, EnergyEvening: true, EnergyNight: true,
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ValidPriorities is the canonical set of accepted task priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true,
}

// EntryType classifies a schedule entry. The set is open: the model may
// return other labels and they pass through untouched.
type EntryType string

const (
	EntryWork  EntryType = "Work"
	EntryBreak EntryType = "Break"
	EntryChore EntryType = "Chore"
)
