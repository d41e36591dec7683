package domain

import "strconv"

// TimeSlot represents one bookable point in the daily schedule.
// Derived per request, never persisted.
type TimeSlot struct {
	ID        string
	Label     string
	Available bool
}

// slotGrid фиксированная сетка получасовых слотов рабочего дня
// Изменение часов работы магазина = изменение этой таблицы
var slotGrid = []string{
	"9:00 AM",
	"9:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"12:30 PM",
	"1:00 PM",
	"1:30 PM",
	"2:00 PM",
	"2:30 PM",
	"3:00 PM",
	"3:30 PM",
	"4:00 PM",
	"4:30 PM",
}

// slotIndex обратный индекс label -> позиция в сетке
var slotIndex = func() map[string]int {
	idx := make(map[string]int, len(slotGrid))
	for i, label := range slotGrid {
		idx[label] = i
	}
	return idx
}()

// GenerateDailySlots returns the canonical ordered list of bookable slots
// for a shop day, all marked available. Pure function of the fixed schedule.
func GenerateDailySlots() []TimeSlot {
	slots := make([]TimeSlot, len(slotGrid))
	for i, label := range slotGrid {
		slots[i] = TimeSlot{
			ID:        strconv.Itoa(i + 1),
			Label:     label,
			Available: true,
		}
	}
	return slots
}

// SlotLabels returns the ordered slot labels of the daily grid
func SlotLabels() []string {
	labels := make([]string, len(slotGrid))
	copy(labels, slotGrid)
	return labels
}

// SlotCount общее количество слотов в дневной сетке
func SlotCount() int {
	return len(slotGrid)
}

// IsValidSlotLabel reports whether label belongs to the daily grid
func IsValidSlotLabel(label string) bool {
	_, ok := slotIndex[label]
	return ok
}

// SlotIndex returns the position of label in the grid, or -1 if unknown
func SlotIndex(label string) int {
	if i, ok := slotIndex[label]; ok {
		return i
	}
	return -1
}
