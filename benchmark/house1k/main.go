package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxHouseholds int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// household carries one simulated account: its own cookie jar keeps the
// session token between calls.
type household struct {
	email       string
	client      *http.Client
	roomID      uint
	applianceID uint
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	households := make([]*household, maxHouseholds)
	for i := range maxHouseholds {
		jar, err := cookiejar.New(nil)
		if err != nil {
			log.Fatal("Failed to create cookie jar:", err)
		}
		households[i] = &household{
			email:  uuid.NewString() + "@bench.local",
			client: &http.Client{Jar: jar},
		}
	}
	fmt.Printf("generated %v households\n", maxHouseholds)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxHouseholds {
		wg.Add(1)
		go func() {
			setupHousehold(households[i])
			fmt.Printf("\rset up household %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rset up %v households: used time=%v seconds, throughput=%v action/second\n",
		maxHouseholds, usedTime.Seconds(), float64(maxHouseholds*3)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxHouseholds {
		wg.Add(1)
		go func() {
			doAction(households[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v households: used time=%v seconds, throughput=%v action/second\n",
		maxHouseholds, usedTime.Seconds(), float64(maxHouseholds*4)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postJSON(client *http.Client, path string, payload any) map[string]any {
	jsonData, _ := json.Marshal(payload)
	resp, err := client.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("status %v from %v: %v", resp.StatusCode, path, body))
	}
	return body
}

// setupHousehold registers the account (which also logs it in), adds one
// room and one appliance. Room and appliance ids are kept for the action
// phase.
func setupHousehold(h *household) {
	postJSON(h.client, "/register", map[string]any{
		"email":             h.email,
		"password":          "benchmark1",
		"first_name":        "Bench",
		"last_name":         "User",
		"security_question": "Favorite color?",
		"security_answer":   "blue",
	})

	roomResp := postJSON(h.client, "/api/add-room", map[string]any{
		"room_name": "Living Room",
	})
	if room, ok := roomResp["room"].(map[string]any); ok {
		h.roomID = uint(room["room_id"].(float64))
	}

	applianceResp := postJSON(h.client, "/api/add-appliance", map[string]any{
		"appliance_name":        "Fridge",
		"room_id":               h.roomID,
		"quantity":              1,
		"min_power_rating_watt": rndFloat64(50.0, 150.0, 2),
		"max_power_rating_watt": rndFloat64(150.0, 500.0, 2),
	})
	if id, ok := applianceResp["appliance_id"].(float64); ok {
		h.applianceID = uint(id)
	}
}

func doAction(h *household) {
	actions := []func(){
		genAddUsageLogAction(h),
		genDashboardStatsAction(h),
		genRoomUsageAction(h),
		genSimulateAlertsAction(h),
	}
	actionNames := []string{
		"AddUsageLog",
		"DashboardStats",
		"RoomUsage",
		"SimulateAlerts",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for household %v", actionNames[index], h.email)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genAddUsageLogAction(h *household) func() {
	return func() {
		postJSON(h.client, "/api/add-usage-log", map[string]any{
			"appliance_id":    h.applianceID,
			"energy_consumed": rndFloat64(0.1, 5.0, 2),
			"duration_hours":  rndFloat64(0.5, 4.0, 1),
		})
	}
}

func genDashboardStatsAction(h *household) func() {
	return func() {
		resp, err := h.client.Get(fmt.Sprintf("http://%s/api/dashboard-stats", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genRoomUsageAction(h *household) func() {
	return func() {
		resp, err := h.client.Get(fmt.Sprintf("http://%s/api/room-usage", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genSimulateAlertsAction(h *household) func() {
	return func() {
		postJSON(h.client, "/api/simulate-alerts", map[string]any{})
	}
}
