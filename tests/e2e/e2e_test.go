package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

// The smoke test runs against a live instance pointed at a real SharePoint
// list. It is skipped unless E2E_BASE_URL is set, e.g.
// E2E_BASE_URL=http://localhost:3001 go test ./tests/e2e/
func baseURL(t *testing.T) string {
	url := os.Getenv("E2E_BASE_URL")
	if url == "" {
		t.Skip("E2E_BASE_URL not set, skipping live smoke test")
	}
	return url
}

func TestE2E_UserCRUD(t *testing.T) {
	base := baseURL(t)
	waitForService(t, base)

	client := &http.Client{Timeout: 30 * time.Second}

	t.Log("Step 1: Create user")
	createBody := []byte(`{"userId": "999001", "name": "E2E Tester", "group": "QA"}`)
	resp, err := client.Post(base+"/api/users", "application/json", bytes.NewBuffer(createBody))
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Step 1 Failed: Expected 201, got %d", resp.StatusCode)
	}

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Group  string `json:"group"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	if !created.Success || created.Data.ID == "" {
		t.Fatalf("Step 1 Failed: unexpected body %+v", created)
	}
	if created.Data.Status != "Active" {
		t.Fatalf("Step 1 Failed: expected default status Active, got %q", created.Data.Status)
	}
	id := created.Data.ID
	t.Log("Step 1: Success, id =", id)

	t.Log("Step 2: List contains the new user")
	resp, err = client.Get(base + "/api/users")
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	defer resp.Body.Close()

	var list struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			ID     string `json:"id"`
			UserID string `json:"userId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode list response: %v", err)
	}
	found := false
	for _, u := range list.Data {
		if u.ID == id {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Step 2 Failed: created user %s not in list", id)
	}
	t.Log("Step 2: Success")

	t.Log("Step 3: Patch status")
	patchReq, _ := http.NewRequest("PATCH", base+"/api/users/"+id, bytes.NewBufferString(`{"status": "Inactive"}`))
	patchReq.Header.Set("Content-Type", "application/json")
	resp, err = client.Do(patchReq)
	if err != nil {
		t.Fatalf("Failed to patch user: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 3 Failed: Expected 200, got %d", resp.StatusCode)
	}
	t.Log("Step 3: Success")

	t.Log("Step 4: Delete user")
	delReq, _ := http.NewRequest("DELETE", base+"/api/users/"+id, nil)
	resp, err = client.Do(delReq)
	if err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 4 Failed: Expected 200, got %d", resp.StatusCode)
	}
	t.Log("Step 4: Success")
}

func waitForService(t *testing.T, base string) {
	t.Log("Waiting for service to start...")
	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(base + "/api/health")
			if err == nil && resp.StatusCode == http.StatusOK {
				resp.Body.Close()
				t.Log("Service is UP!")
				return
			}
		}
	}
}
