package application

import (
	"fmt"
	"time"

	"github.com/example/coworking-hub/internal/store"
)

// fixedNow pins the service clock to a known day so expiry and stamping
// assertions are deterministic.
func fixedNow() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.August, 28, 10, 30, 0, 0, time.UTC)
	}
}

func sequenceIDs(prefix string) func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("%s-%d", prefix, counter)
	}
}

func newAdminStore() *store.Store {
	st := store.NewEmpty()
	st.SetAdmin(true)
	return st
}
