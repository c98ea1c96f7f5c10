package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type SmokeResult struct {
	Name         string        `json:"name"`
	Endpoint     string        `json:"endpoint"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
	DataSize     int           `json:"data_size"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

type SmokeSuite struct {
	BaseURL string
	Client  *http.Client
	Results []SmokeResult
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "server base URL")
	redisAddr := flag.String("redis", "", "optional Redis address to ping first")
	withLLM := flag.Bool("llm", false, "also exercise endpoints that call the model")
	out := flag.String("out", "smoke_results.json", "where to write the detailed results")
	flag.Parse()

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("cookie jar: %v", err)
	}

	suite := &SmokeSuite{
		BaseURL: *baseURL,
		Client:  &http.Client{Timeout: 60 * time.Second, Jar: jar},
	}

	fmt.Println("🧪 Starting QueueSmart smoke test...")
	fmt.Println("===================================")

	if *redisAddr != "" {
		if err := testRedisConnection(*redisAddr); err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		fmt.Println("✅ Redis connection: OK")
	}

	testCases := []struct {
		name     string
		method   string
		endpoint string
		body     string
		llm      bool
	}{
		{"Health", http.MethodGet, "/health", "", false},
		{"Status", http.MethodGet, "/status", "", false},
		{"Canteen List", http.MethodGet, "/api/v1/canteens", "", false},
		{"Nearest Canteen", http.MethodGet, "/api/v1/canteens/nearest?latitude=1.3480&longitude=103.6805", "", false},
		{"Dashboard Open", http.MethodGet, "/api/v1/dashboard", "", false},
		{"Dashboard Form", http.MethodPatch, "/api/v1/dashboard/form", `{"time":"18:00"}`, false},
		{"Geolocation Denied", http.MethodPost, "/api/v1/dashboard/locate", `{"error_code":"PERMISSION_DENIED"}`, false},
		{"Analytics Series", http.MethodGet, "/api/v1/analytics/series", "", true},
		{"Prediction", http.MethodPost, "/api/v1/predictions", `{"canteen":"The Hive","time":"12:30"}`, true},
		{"Dashboard Predict", http.MethodPost, "/api/v1/dashboard/predict", "", true},
		{"Dashboard Locate", http.MethodPost, "/api/v1/dashboard/locate", `{"latitude":1.3502,"longitude":103.6834}`, true},
	}

	for _, tc := range testCases {
		if tc.llm && !*withLLM {
			continue
		}
		fmt.Printf("\n🔍 Testing: %s\n", tc.name)
		suite.Results = append(suite.Results, suite.testEndpoint(tc.name, tc.method, tc.endpoint, tc.body))
	}

	failed := suite.generateReport(*out)

	fmt.Println("\n🎉 Smoke test complete!")
	if failed > 0 {
		os.Exit(1)
	}
}

func testRedisConnection(addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func (s *SmokeSuite) testEndpoint(name, method, endpoint, body string) SmokeResult {
	result := SmokeResult{Name: name, Endpoint: endpoint}

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, s.BaseURL+endpoint, reader)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.Client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		fmt.Printf("   ❌ %v\n", err)
		return result
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	result.StatusCode = resp.StatusCode
	result.DataSize = len(data)
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 400
	if !result.Success {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	statusIcon := "✅"
	if !result.Success {
		statusIcon = "❌"
	}
	fmt.Printf("   %s %d %v (%d bytes)\n", statusIcon, resp.StatusCode, result.ResponseTime, len(data))

	return result
}

func (s *SmokeSuite) generateReport(path string) int {
	fmt.Println("\n📊 SMOKE TEST REPORT")
	fmt.Println("====================")

	successful := 0
	var total time.Duration
	for _, r := range s.Results {
		if r.Success {
			successful++
		}
		total += r.ResponseTime
	}

	fmt.Printf("Total Tests: %d\n", len(s.Results))
	if len(s.Results) > 0 {
		fmt.Printf("Successful: %d (%.1f%%)\n", successful, float64(successful)/float64(len(s.Results))*100)
		fmt.Printf("Average Response Time: %v\n", total/time.Duration(len(s.Results)))
	}

	reportData, err := json.MarshalIndent(map[string]interface{}{
		"summary": map[string]interface{}{
			"total_tests":      len(s.Results),
			"successful_tests": successful,
		},
		"results": s.Results,
	}, "", "  ")
	if err == nil {
		if err := os.WriteFile(path, reportData, 0o644); err != nil {
			fmt.Printf("⚠️  Could not write %s: %v\n", path, err)
		} else {
			fmt.Printf("\n💾 Detailed results saved to %s\n", path)
		}
	}

	return len(s.Results) - successful
}
