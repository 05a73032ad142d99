package services

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ExtractService turns raw job-posting text into the structured fields
// a POST /jobs body needs. The client is created once and reused.
type ExtractService struct {
	Client llms.Model
}

// NewExtractService initializes the Gemini client. Returns nil when
// GEMINI_API_KEY is unset so the server can run without the extraction
// endpoint.
func NewExtractService() *ExtractService {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, job extraction disabled")
		return nil
	}

	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &ExtractService{Client: llm}
}

const extractionPrompt = `
You are a job data extraction assistant. Analyze the raw text of a job
posting and extract structured data.

### INSTRUCTIONS:
1. Ignore navigation menus, footers, "similar jobs" lists and ads.
2. Output valid JSON only. Do not wrap the output in markdown code blocks.
3. If a piece of information is missing, set the value to null. Never guess.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "companyName": "Name of the company",
    "location": "Job location or 'Remote'",
    "salary": 120000,
    "equity": 0.05,
    "description": "Clean summary focused on responsibilities and requirements"
}

### RAW CONTENT:
%s
`

// ExtractJobDetails returns the model's JSON for the given posting text.
func (s *ExtractService) ExtractJobDetails(ctx context.Context, rawText string) (string, error) {
	if len(rawText) > 20000 {
		rawText = rawText[:20000]
	}
	prompt := fmt.Sprintf(extractionPrompt, rawText)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}
