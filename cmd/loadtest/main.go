package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var productTypes = []string{"Course", "Template Pack", "Notion System", "Community", "SaaS Tool", "Ebook"}

func main() {
	target := flag.String("target", "http://localhost:8080/api/v1/ideas", "ideas endpoint")
	freq := flag.Int("rate", 5, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "attack duration")
	distinct := flag.Int("distinct", 10, "distinct payloads; repeats exercise the ideas cache")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	payloads := make([][]byte, *distinct)
	for i := range payloads {
		payloads[i] = newPayload()
	}

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker(vegeta.Timeout(150 * time.Second))

	var metrics vegeta.Metrics
	for res := range attacker.Attack(newTargeter(*target, payloads), rate, *duration, "ideas") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Detailed report ===")
	vegeta.NewTextReporter(&metrics).Report(os.Stdout)
}

func newPayload() []byte {
	summary := map[string]any{
		"topic":         gofakeit.BuzzWord() + " " + gofakeit.JobTitle(),
		"category":      gofakeit.RandomString([]string{"Tech", "Business", "Creative", "Education"}),
		"momentumScore": gofakeit.Number(40, 99),
		"summary": map[string]string{
			"whyItMatters":       gofakeit.Sentence(12),
			"whoItServes":        gofakeit.JobDescriptor() + " " + gofakeit.JobTitle() + "s",
			"monetizationWindow": gofakeit.RandomString([]string{"short", "medium", "long"}),
		},
	}

	b, _ := json.Marshal(map[string]any{
		"trendSummary": summary,
		"goal":         fmt.Sprintf("Reach $%d MRR", gofakeit.Number(1, 20)*1000),
		"productType":  gofakeit.RandomString(productTypes),
	})
	return b
}

// newTargeter cycles through payloads and tags every request with a fresh request id.
func newTargeter(url string, payloads [][]byte) vegeta.Targeter {
	i := 0
	return func(tgt *vegeta.Target) error {
		tgt.Method = http.MethodPost
		tgt.URL = url
		tgt.Body = payloads[i%len(payloads)]
		tgt.Header = http.Header{
			"Content-Type": {"application/json"},
			"X-Request-ID": {uuid.New().String()},
		}
		i++
		return nil
	}
}
