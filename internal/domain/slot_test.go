package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadehouse/booking-service/internal/domain"
)

func TestGenerateDailySlots(t *testing.T) {
	slots := domain.GenerateDailySlots()

	require.Len(t, slots, 16)

	assert.Equal(t, "1", slots[0].ID)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, "16", slots[15].ID)
	assert.Equal(t, "4:30 PM", slots[15].Label)

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s must start available", slot.Label)
	}
}

func TestGenerateDailySlots_Independent(t *testing.T) {
	first := domain.GenerateDailySlots()
	first[0].Available = false

	second := domain.GenerateDailySlots()
	assert.True(t, second[0].Available, "grids must not share state")
}

func TestSlotLabels_Order(t *testing.T) {
	labels := domain.SlotLabels()

	require.Len(t, labels, domain.SlotCount())
	assert.Equal(t, "9:00 AM", labels[0])
	assert.Equal(t, "12:00 PM", labels[6])
	assert.Equal(t, "1:00 PM", labels[8])
	assert.Equal(t, "4:30 PM", labels[len(labels)-1])
}

func TestIsValidSlotLabel(t *testing.T) {
	tests := []struct {
		label string
		valid bool
	}{
		{"9:00 AM", true},
		{"12:30 PM", true},
		{"4:30 PM", true},
		{"5:00 PM", false},
		{"09:00 AM", false},
		{"9:00 am", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, domain.IsValidSlotLabel(tt.label), "label %q", tt.label)
	}
}

func TestSlotIndex(t *testing.T) {
	assert.Equal(t, 0, domain.SlotIndex("9:00 AM"))
	assert.Equal(t, 15, domain.SlotIndex("4:30 PM"))
	assert.Equal(t, -1, domain.SlotIndex("8:00 AM"))
}
