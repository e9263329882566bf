// Load generator for a locally running daemon. Seeds a roster per
// installation, then hammers the command endpoint with a realistic
// read-heavy mix to exercise the cache path.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"
)

const (
	baseURL       = "http://127.0.0.1:8080"
	numWorkers    = 50
	testDuration  = 10 * time.Second
	numInstalls   = 20
	rosterEntries = 40
)

var commands = []string{"upcoming", "today", "stats"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== BBD Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Installations: %d\n\n", numWorkers, testDuration, numInstalls)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding rosters (PUT /roster) ---")
	seedRosters()

	fmt.Println("\n--- Phase 2: Command-heavy load (90% POST /command, 10% GET /roster) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.90 {
			return doCommand(rng)
		}
		return doGetRoster(rng)
	})

	fmt.Println("\n--- Phase 3: Mixed load with roster churn (70% command, 20% read, 10% replace) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.70:
			return doCommand(rng)
		case r < 0.90:
			return doGetRoster(rng)
		default:
			return doPutRoster(rng)
		}
	})
}

func installation(rng *rand.Rand) string {
	return fmt.Sprintf("install_%d", rng.Intn(numInstalls))
}

func rosterBody(rng *rand.Rand) []byte {
	entries := make([]map[string]interface{}, 0, rosterEntries)
	for i := 0; i < rosterEntries; i++ {
		month := rng.Intn(12) + 1
		entries = append(entries, map[string]interface{}{
			"name":  fmt.Sprintf("Person %d-%d", rng.Intn(1000000), i),
			"month": month,
			"day":   rng.Intn(28) + 1,
		})
	}
	data, _ := json.Marshal(map[string]interface{}{"entries": entries})
	return data
}

func seedRosters() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < numInstalls; i++ {
		url := fmt.Sprintf("%s/roster?installation=install_%d", baseURL, i)
		req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(rosterBody(rng)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := httpClient.Do(req)
		if err != nil {
			fmt.Printf("  seed install_%d: %s\n", i, err)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != 200 {
			fmt.Printf("  seed install_%d: HTTP %d\n", i, resp.StatusCode)
		}
	}
	fmt.Printf("  Seeded %d installations with %d entries each\n", numInstalls, rosterEntries)
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + divider())

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + divider())
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doCommand(rng *rand.Rand) result {
	cmd := commands[rng.Intn(len(commands))]
	body := map[string]interface{}{
		"installationId": installation(rng),
		"command":        cmd,
	}
	if cmd == "upcoming" && rng.Float64() < 0.2 {
		body["expanded"] = true
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/command", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	label := "POST /command " + cmd
	if err != nil {
		return result{label, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{label, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetRoster(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/roster?installation=%s", baseURL, installation(rng))
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /roster", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /roster", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doPutRoster(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/roster?installation=%s", baseURL, installation(rng))
	req, _ := http.NewRequest(http.MethodPut, url, bytes.NewReader(rosterBody(rng)))
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{"PUT /roster", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"PUT /roster", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func divider() string {
	out := ""
	for i := 0; i < 88; i++ {
		out += "-"
	}
	return out
}
