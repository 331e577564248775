package api

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCreateHabitAppliesDefaultsAndValidation(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "habits@example.com")

	created := createHabitForTest(t, app, authCookie, "Morning run", "daily", 1)
	if created.Color != "#4F9DDE" {
		t.Fatalf("expected the default color, got %q", created.Color)
	}
	if !created.IsActive || created.IsArchived {
		t.Fatal("expected a new habit to be active")
	}
	if created.Version == 0 {
		t.Fatal("expected a versioned habit")
	}

	response := postJSON(t, app, "/api/habits", authCookie, map[string]any{
		"title":        "Bad cadence",
		"frequency":    "hourly",
		"target_count": 1,
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected an unknown frequency to be rejected with 400, got %d", response.StatusCode)
	}
}

func TestHabitLifecycleUpdatesDerivedCounters(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "lifecycle@example.com")
	habit := createHabitForTest(t, app, authCookie, "Read", "daily", 1)

	var saved habitView
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		saved = logEntryForTest(t, app, authCookie, habit.ID, day, 1)
	}

	if saved.TotalCompletions != 3 {
		t.Fatalf("expected 3 completions, got %d", saved.TotalCompletions)
	}
	if saved.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", saved.LongestStreak)
	}
	if len(saved.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(saved.Entries))
	}
	if saved.Entries[0].Date != "2024-01-01" || saved.Entries[2].Date != "2024-01-03" {
		t.Fatalf("expected entries sorted by day, got %s..%s", saved.Entries[0].Date, saved.Entries[2].Date)
	}

	// Overwriting a day keeps the entry set unique.
	saved = logEntryForTest(t, app, authCookie, habit.ID, "2024-01-02", 5)
	if len(saved.Entries) != 3 {
		t.Fatalf("expected the overwrite to keep 3 entries, got %d", len(saved.Entries))
	}
	if saved.Entries[1].Value != 5 {
		t.Fatalf("expected the overwritten value 5, got %v", saved.Entries[1].Value)
	}

	// Removing the middle day splits the run.
	target := fmt.Sprintf("/api/habits/%d/entries/2024-01-02", habit.ID)
	response := doRequest(t, app, jsonRequest(t, http.MethodDelete, target, authCookie, nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected entry delete status 200, got %d", response.StatusCode)
	}
	saved = habitView{}
	decodeJSONBody(t, response, &saved)
	response.Body.Close()

	if len(saved.Entries) != 2 {
		t.Fatalf("expected 2 entries after deletion, got %d", len(saved.Entries))
	}
	if saved.LongestStreak != 1 || saved.TotalCompletions != 2 {
		t.Fatalf("expected the split runs to report 1/2, got %d/%d", saved.LongestStreak, saved.TotalCompletions)
	}
}

func TestEntryRoutesRejectMalformedDates(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "dates@example.com")
	habit := createHabitForTest(t, app, authCookie, "Stretch", "daily", 1)

	malformed := []string{"2024-1-05", "20240105", "2024-02-30", "yesterday"}
	for _, day := range malformed {
		target := fmt.Sprintf("/api/habits/%d/entries/%s", habit.ID, day)
		response := doRequest(t, app, jsonRequest(t, http.MethodPut, target, authCookie, map[string]any{"value": 1}))
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected day %q to be rejected with 400, got %d", day, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestGetEntriesReturnsInclusiveRange(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "range@example.com")
	habit := createHabitForTest(t, app, authCookie, "Walk", "daily", 1)

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		logEntryForTest(t, app, authCookie, habit.ID, day, 1)
	}

	target := fmt.Sprintf("/api/habits/%d/entries?from=2024-01-02&to=2024-01-04", habit.ID)
	response := doRequest(t, app, jsonRequest(t, http.MethodGet, target, authCookie, nil))
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var entries []entryView
	decodeJSONBody(t, response, &entries)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries in range, got %d", len(entries))
	}
	if entries[0].Date != "2024-01-02" || entries[2].Date != "2024-01-04" {
		t.Fatalf("expected bounds to be inclusive, got %s..%s", entries[0].Date, entries[2].Date)
	}

	inverted := fmt.Sprintf("/api/habits/%d/entries?from=2024-01-04&to=2024-01-02", habit.ID)
	invalidResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, inverted, authCookie, nil))
	defer invalidResponse.Body.Close()
	if invalidResponse.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected an inverted range to be rejected with 400, got %d", invalidResponse.StatusCode)
	}
}

func TestHabitsAreScopedToTheirOwner(t *testing.T) {
	app, database := newTestApp(t)
	ownerCookie := registerAndLogin(t, app, database, "owner@example.com")
	intruderCookie := registerAndLogin(t, app, database, "intruder@example.com")

	habit := createHabitForTest(t, app, ownerCookie, "Private", "daily", 1)

	probes := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: fmt.Sprintf("/api/habits/%d", habit.ID)},
		{method: http.MethodGet, target: fmt.Sprintf("/api/habits/%d/stats", habit.ID)},
		{method: http.MethodPut, target: fmt.Sprintf("/api/habits/%d/entries/2024-01-01", habit.ID)},
		{method: http.MethodDelete, target: fmt.Sprintf("/api/habits/%d", habit.ID)},
	}

	for _, probe := range probes {
		var payload any
		if probe.method == http.MethodPut {
			payload = map[string]any{"value": 1}
		}
		response := doRequest(t, app, jsonRequest(t, probe.method, probe.target, intruderCookie, payload))
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("expected %s %s to be 404 for another user, got %d", probe.method, probe.target, response.StatusCode)
		}
		response.Body.Close()
	}

	// The owner still sees the habit untouched.
	response := doRequest(t, app, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/habits/%d", habit.ID), ownerCookie, nil))
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected the owner's habit to survive, got %d", response.StatusCode)
	}
}

func TestArchiveHidesHabitFromDefaultList(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "archive@example.com")
	habit := createHabitForTest(t, app, authCookie, "Old habit", "daily", 1)

	response := postJSON(t, app, fmt.Sprintf("/api/habits/%d/archive", habit.ID), authCookie, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected archive status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	listResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/habits", authCookie, nil))
	var visible []habitView
	decodeJSONBody(t, listResponse, &visible)
	listResponse.Body.Close()
	if len(visible) != 0 {
		t.Fatalf("expected the archived habit to be hidden, got %d habits", len(visible))
	}

	allResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/habits?include_archived=true", authCookie, nil))
	var all []habitView
	decodeJSONBody(t, allResponse, &all)
	allResponse.Body.Close()
	if len(all) != 1 || !all[0].IsArchived {
		t.Fatalf("expected the archived habit to be listed on request, got %d habits", len(all))
	}

	unarchiveResponse := postJSON(t, app, fmt.Sprintf("/api/habits/%d/unarchive", habit.ID), authCookie, nil)
	if unarchiveResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected unarchive status 200, got %d", unarchiveResponse.StatusCode)
	}
	unarchiveResponse.Body.Close()

	restoredResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/habits", authCookie, nil))
	var restored []habitView
	decodeJSONBody(t, restoredResponse, &restored)
	restoredResponse.Body.Close()
	if len(restored) != 1 || !restored[0].IsActive {
		t.Fatalf("expected the habit back in the default list, got %d habits", len(restored))
	}
}

func TestUpdateHabitRaisingTargetResetsCompletions(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "target@example.com")
	habit := createHabitForTest(t, app, authCookie, "Pushups", "daily", 1)

	logEntryForTest(t, app, authCookie, habit.ID, "2024-01-01", 1)
	logEntryForTest(t, app, authCookie, habit.ID, "2024-01-02", 1)

	response := doRequest(t, app, jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/habits/%d", habit.ID), authCookie, map[string]any{
		"title":        "Pushups",
		"frequency":    "daily",
		"target_count": 5,
	}))
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected update status 200, got %d", response.StatusCode)
	}

	updated := habitView{}
	decodeJSONBody(t, response, &updated)
	if updated.TargetCount != 5 {
		t.Fatalf("expected target 5, got %d", updated.TargetCount)
	}
	if updated.TotalCompletions != 0 || updated.LongestStreak != 0 {
		t.Fatalf("expected counters to reset under the raised target, got %d completions and streak %d",
			updated.TotalCompletions, updated.LongestStreak)
	}
}

func TestDeleteHabitRemovesIt(t *testing.T) {
	app, database := newTestApp(t)
	authCookie := registerAndLogin(t, app, database, "remove@example.com")
	habit := createHabitForTest(t, app, authCookie, "Doomed", "daily", 1)

	response := doRequest(t, app, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/habits/%d", habit.ID), authCookie, nil))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected delete status 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	lookupResponse := doRequest(t, app, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/habits/%d", habit.ID), authCookie, nil))
	defer lookupResponse.Body.Close()
	if lookupResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected the deleted habit to be 404, got %d", lookupResponse.StatusCode)
	}
}
