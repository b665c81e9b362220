package scheduler

import (
	"testing"
	"time"

	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSet map[models.SlotKey]bool

func (r recordSet) IsOccupied(date, slot string) bool {
	return r[models.SlotKey{Date: date, Time: slot}]
}

func TestBuildGrid(t *testing.T) {
	records := recordSet{
		{Date: "2024-03-04", Time: "9:00 AM"}:  true,
		{Date: "2024-03-06", Time: "10:30 AM"}: true,
	}

	t.Run("Shape and checked cells", func(t *testing.T) {
		grid := BuildGrid(stateAt(t, "2024-03-04"), records)

		assert.Equal(t, "Monday - March 4th, 2024", grid.Header)
		assert.Equal(t, "2024-03-04", grid.DisplayedDate)
		require.Len(t, grid.Rows, 5)
		for i, row := range grid.Rows {
			assert.Equal(t, Weekdays[i], row.Day)
			assert.False(t, row.Selected)
			require.Len(t, row.Cells, 31)
			assert.True(t, row.Cells[2].Checked, "9:00 AM on %s", row.Day)
			assert.False(t, row.Cells[3].Checked)
			for _, c := range row.Cells {
				assert.False(t, c.Highlighted)
			}
		}
		assert.Equal(t, []string{"9:00 AM"}, grid.CheckedSlots())
	})

	t.Run("Selected row", func(t *testing.T) {
		s, err := stateAt(t, "2024-03-04").SelectWeekday("Wednesday")
		require.NoError(t, err)

		grid := BuildGrid(s, records)
		assert.True(t, grid.Rows[2].Selected)
		assert.False(t, grid.Rows[0].Selected)
		assert.Equal(t, []string{"10:30 AM"}, grid.CheckedSlots())
	})

	t.Run("Highlight follows the picked calendar date", func(t *testing.T) {
		s := stateAt(t, "2024-03-01").JumpTo(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC))
		s = s.NextWeek().PreviousWeek()
		s, err := s.SelectWeekday("Wednesday")
		require.NoError(t, err)

		grid := BuildGrid(s, records)
		cells := grid.Rows[0].Cells

		// checked tracks 2024-03-06, highlight still tracks 2024-03-04
		assert.True(t, cells[5].Checked)
		assert.False(t, cells[5].Highlighted)
		assert.True(t, cells[2].Highlighted)
		assert.False(t, cells[2].Checked)
	})
}
