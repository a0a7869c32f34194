package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AmountRequest is the debit and credit payload
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// PaymentRequest is the payment confirmation payload
type PaymentRequest struct {
	PaymentID string `json:"paymentId"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// AccountResponse is the balance read at the end of the run
type AccountResponse struct {
	UserID  string `json:"userId"`
	Credits int64  `json:"credits"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[string]int // Requests per user
	ScenarioStats      map[string]int // Requests per scenario
	Lock               sync.Mutex
}

// LedgerScenario is one kind of ledger request
type LedgerScenario struct {
	Name   string // For stats tracking
	Path   string
	Amount int64
	Status string // Payment status, only for confirmations
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "dev-user-1,dev-user-2,dev-user-3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", "", "HS256 secret used to sign bearer tokens, empty when auth is disabled")
	role := flag.String("role", "service", "Role claim for signed tokens; credit and payment routes need the service role")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []string{"dev-user-1"}
	}

	tokens := make(map[string]string, len(userIDs))
	if *secret != "" {
		for _, id := range userIDs {
			token, err := signToken(*secret, id, *role)
			if err != nil {
				fmt.Printf("Failed to sign token for %s: %v\n", id, err)
				return
			}
			tokens[id] = token
		}
	}

	scenarios := []LedgerScenario{
		{Name: "Debit Question", Path: "credits/debit", Amount: 1},
		{Name: "Debit Large", Path: "credits/debit", Amount: 50},
		{Name: "Credit Refund", Path: "credits/credit", Amount: 1},
		{Name: "Confirm Payment", Path: "payments/confirm", Amount: 500, Status: "succeeded"},
		{Name: "Confirm Failed", Path: "payments/confirm", Amount: 500, Status: "requires_payment_method"},
	}

	fmt.Printf("Load testing ledger across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	client := &http.Client{Timeout: 10 * time.Second}

	for _, id := range userIDs {
		if _, err := send(client, http.MethodPost, fmt.Sprintf("%s/user/%s/account", *baseURL, id), tokens[id], nil); err != nil {
			fmt.Printf("Failed to open account for %s: %v\n", id, err)
		}
	}

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, tokens, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	printBalances(client, *baseURL, userIDs, tokens)
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []string, tokens map[string]string,
	scenarios []LedgerScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.UserStats[userID]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		var payload any = AmountRequest{Amount: scenario.Amount}
		if scenario.Status != "" {
			payload = PaymentRequest{
				PaymentID: "pi_" + uuid.NewString(),
				Amount:    scenario.Amount,
				Status:    scenario.Status,
			}
		}

		apiURL := fmt.Sprintf("%s/user/%s/%s", baseURL, userID, scenario.Path)
		startTime := time.Now()
		statusCode, err := send(client, http.MethodPost, apiURL, tokens[userID], payload)
		result := TestResult{
			ResponseTime: time.Since(startTime),
			StatusCode:   statusCode,
		}

		switch {
		case err != nil:
			result.Error = err
		case statusCode >= 200 && statusCode < 300:
			result.Success = true
		case scenario.Status != "" && statusCode == http.StatusUnprocessableEntity:
			// Payments not marked succeeded are expected to be rejected
			result.Success = true
		default:
			result.Error = fmt.Errorf("HTTP status code %d", statusCode)
		}

		results <- result
	}
}

// send issues a JSON request and returns the status code
func send(client *http.Client, method, url, token string, payload any) (int, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func signToken(secret, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func printBalances(client *http.Client, baseURL string, userIDs []string, tokens map[string]string) {
	fmt.Println("\n----------------- FINAL BALANCES -----------------")
	for _, userID := range userIDs {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/user/%s/balance", baseURL, userID), nil)
		if err != nil {
			continue
		}
		if token := tokens[userID]; token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("%-15s: %v\n", userID, err)
			continue
		}

		var account AccountResponse
		err = json.NewDecoder(resp.Body).Decode(&account)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("%-15s: unreadable balance: %v\n", userID, err)
			continue
		}
		fmt.Printf("%-15s: %d credits\n", userID, account.Credits)
	}
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)
		sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for userID, count := range stats.UserStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", userID, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
