package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_IsVisible(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Announcement{IsActive: true}.IsVisible(now))
	assert.True(t, Announcement{IsActive: true, ExpiresAt: &future}.IsVisible(now))
	assert.False(t, Announcement{IsActive: true, ExpiresAt: &past}.IsVisible(now))
	assert.False(t, Announcement{IsActive: true, ExpiresAt: &now}.IsVisible(now))
	assert.False(t, Announcement{IsActive: false}.IsVisible(now))
}
