package belonging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBelonging(t *testing.T) {
	t.Run("creates belonging with valid inputs", func(t *testing.T) {
		b, err := NewBelonging("Laptop", "electronics", Tags{"essential", "work"}, StatusUnpacked)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, "Laptop", b.Name)
		assert.Equal(t, "electronics", b.Category)
		assert.Equal(t, Tags{"essential", "work"}, b.Tags)
		assert.Equal(t, StatusUnpacked, b.Status)
		assert.False(t, b.CreatedAt.IsZero())
		assert.False(t, b.UpdatedAt.IsZero())
	})

	t.Run("defaults status to unpacked", func(t *testing.T) {
		b, err := NewBelonging("Passport", "documents", nil, "")
		require.NoError(t, err)
		assert.Equal(t, StatusUnpacked, b.Status)
	})

	t.Run("defaults nil tags to empty slice", func(t *testing.T) {
		b, err := NewBelonging("Passport", "documents", nil, StatusUnpacked)
		require.NoError(t, err)
		require.NotNil(t, b.Tags)
		assert.Empty(t, b.Tags)
	})

	t.Run("trims name and category", func(t *testing.T) {
		b, err := NewBelonging("  Winter Jacket ", " clothes ", nil, StatusPacked)
		require.NoError(t, err)
		assert.Equal(t, "Winter Jacket", b.Name)
		assert.Equal(t, "clothes", b.Category)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewBelonging("   ", "electronics", nil, StatusUnpacked)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
	})

	t.Run("fails with empty category", func(t *testing.T) {
		_, err := NewBelonging("Laptop", "", nil, StatusUnpacked)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category is required")
	})

	t.Run("fails with unknown status", func(t *testing.T) {
		_, err := NewBelonging("Laptop", "electronics", nil, "half-packed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "packed")
	})

	t.Run("fails with duplicate tags", func(t *testing.T) {
		_, err := NewBelonging("Laptop", "electronics", Tags{"work", "work"}, StatusUnpacked)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Duplicate tag")
	})

	t.Run("fails with blank tag", func(t *testing.T) {
		_, err := NewBelonging("Laptop", "electronics", Tags{"work", "  "}, StatusUnpacked)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tags cannot be empty")
	})
}

func TestBelongingUpdate(t *testing.T) {
	t.Run("replaces all fields", func(t *testing.T) {
		b, err := NewBelonging("Laptop", "electronics", Tags{"work"}, StatusUnpacked)
		require.NoError(t, err)

		before := b.UpdatedAt
		err = b.Update("Laptop Pro", "electronics", Tags{"work", "fragile"}, StatusPacked)
		require.NoError(t, err)

		assert.Equal(t, "Laptop Pro", b.Name)
		assert.Equal(t, Tags{"work", "fragile"}, b.Tags)
		assert.Equal(t, StatusPacked, b.Status)
		assert.True(t, !b.UpdatedAt.Before(before))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		b, err := NewBelonging("Laptop", "electronics", nil, StatusUnpacked)
		require.NoError(t, err)

		err = b.Update("Laptop", "electronics", nil, "lost")
		require.Error(t, err)
		assert.Equal(t, StatusUnpacked, b.Status)
	})
}

func TestBelongingIsPacked(t *testing.T) {
	packed, err := NewBelonging("Charger", "electronics", nil, StatusPacked)
	require.NoError(t, err)
	unpacked, err := NewBelonging("Textbooks", "books", nil, StatusUnpacked)
	require.NoError(t, err)

	assert.True(t, packed.IsPacked())
	assert.False(t, unpacked.IsPacked())
}

func TestTagsValueScan(t *testing.T) {
	t.Run("round trips through the driver representation", func(t *testing.T) {
		original := Tags{"essential", "work", "fragile"}
		value, err := original.Value()
		require.NoError(t, err)

		var scanned Tags
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, original, scanned)
	})

	t.Run("nil slice stores an empty array", func(t *testing.T) {
		var tags Tags
		value, err := tags.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("scans nil as empty", func(t *testing.T) {
		var tags Tags
		require.NoError(t, tags.Scan(nil))
		require.NotNil(t, tags)
		assert.Empty(t, tags)
	})

	t.Run("scans byte slices", func(t *testing.T) {
		var tags Tags
		require.NoError(t, tags.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, Tags{"a", "b"}, tags)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		var tags Tags
		assert.Error(t, tags.Scan("not-json"))
	})
}

func TestTagsContains(t *testing.T) {
	tags := Tags{"essential", "work"}
	assert.True(t, tags.Contains("work"))
	assert.False(t, tags.Contains("fragile"))
}
