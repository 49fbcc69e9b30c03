package pathgraph

import "sync"

var (
	defaultOnce  sync.Once
	defaultGraph *Graph
)

// Default returns the seeded curriculum graph, built once.
func Default() *Graph {
	defaultOnce.Do(func() {
		g, err := New(seedNodes())
		if err != nil {
			// The seed is validated by tests; a broken seed is a
			// programming error, not a runtime condition.
			panic(err)
		}
		defaultGraph = g
	})
	return defaultGraph
}

// seedNodes returns the default AI-builder curriculum.
// api-calling is the single root; it unlocks two branches (model
// deployment and no-code apps) that converge again further down.
func seedNodes() []Node {
	return []Node{
		{
			ID:          "api_calling",
			Name:        "API Calling",
			Description: "Call hosted model APIs with auth, errors, and rate limits handled",
			Order:       1,
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Complete 3 API calls using an SDK", Requirements: []string{"successful calls", "basic error handling"}},
				ChannelB: {Summary: "Hand-write HTTP calls with auth and rate limiting", Requirements: []string{"auth flow", "error handling", "rate-limit backoff"}},
				ChannelC: {Summary: "Package a reusable client SDK and publish it", Requirements: []string{"API design", "unit tests", "docs", "published package"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 4, ChannelB: 8, ChannelC: 16},
			RemedyResources: []string{"HTTP fundamentals refresher", "API authentication walkthrough"},
		},
		{
			ID:            "model_deployment",
			Name:          "Model Deployment",
			Description:   "Serve a model behind an endpoint you operate",
			Order:         2,
			Prerequisites: []string{"api_calling"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Deploy a prebuilt model image to a managed host", Requirements: []string{"reachable endpoint"}},
				ChannelB: {Summary: "Containerize and deploy a model with health checks", Requirements: []string{"Dockerfile", "health endpoint", "basic monitoring"}},
				ChannelC: {Summary: "Autoscaling deployment with load testing report", Requirements: []string{"autoscaling config", "load test results", "rollback plan"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 6, ChannelB: 12, ChannelC: 20},
			RemedyResources: []string{"Container basics course", "Deployment checklist template"},
		},
		{
			ID:            "no_code_ai",
			Name:          "No-Code AI App",
			Description:   "Assemble an AI workflow without writing code",
			Order:         3,
			Prerequisites: []string{"api_calling"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Build a single-step workflow from a template", Requirements: []string{"working demo"}},
				ChannelB: {Summary: "Multi-step workflow with branching logic", Requirements: []string{"branching", "error path", "demo video"}},
				ChannelC: {Summary: "Production workflow with integrations and monitoring", Requirements: []string{"two external integrations", "alerting", "usage report"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 3, ChannelB: 6, ChannelC: 12},
			RemedyResources: []string{"Workflow design patterns guide"},
		},
		{
			ID:            "rag_system",
			Name:          "RAG System",
			Description:   "Retrieval-augmented generation over your own corpus",
			Order:         4,
			Prerequisites: []string{"model_deployment"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Index a small corpus and answer questions with a framework", Requirements: []string{"index built", "5 answered queries"}},
				ChannelB: {Summary: "Build retrieval with chunking and rerank, measure quality", Requirements: []string{"chunking strategy", "rerank stage", "eval set"}},
				ChannelC: {Summary: "Hybrid retrieval with latency budget and eval harness", Requirements: []string{"hybrid search", "p95 latency target", "automated evals"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 8, ChannelB: 16, ChannelC: 24},
			RemedyResources: []string{"Embeddings and retrieval primer", "Chunking strategies cookbook"},
		},
		{
			ID:            "ui_design",
			Name:          "UI Design",
			Description:   "Design accessible interfaces for an AI product",
			Order:         5,
			Prerequisites: []string{"no_code_ai"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Produce wireframes for three key screens", Requirements: []string{"wireframes", "navigation map"}},
				ChannelB: {Summary: "High-fidelity mockups meeting accessibility contrast", Requirements: []string{"contrast >= 4.5:1", "touch targets >= 44pt", "component reuse"}},
				ChannelC: {Summary: "Design system with tokens and interaction specs", Requirements: []string{"token set", "interaction states", "handoff doc"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 6, ChannelB: 12, ChannelC: 18},
			RemedyResources: []string{"Accessibility (WCAG) contrast guide", "Mobile design best practices"},
		},
		{
			ID:            "frontend_dev",
			Name:          "Frontend Development",
			Description:   "Implement the product UI against a live backend",
			Order:         6,
			Prerequisites: []string{"ui_design"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "Implement two screens from the mockups", Requirements: []string{"two working screens"}},
				ChannelB: {Summary: "Full flow with state management and API integration", Requirements: []string{"state management", "API wiring", "loading/error states"}},
				ChannelC: {Summary: "Production build with tests and performance budget", Requirements: []string{"component tests", "bundle budget", "CI pipeline"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 10, ChannelB: 20, ChannelC: 30},
			RemedyResources: []string{"Component architecture tutorial"},
		},
		{
			ID:            "backend_dev",
			Name:          "Backend Development",
			Description:   "Build and operate the product's backend services",
			Order:         7,
			Prerequisites: []string{"rag_system"},
			ChannelTasks: map[Channel]Task{
				ChannelA: {Summary: "CRUD service with persistence", Requirements: []string{"CRUD endpoints", "database schema"}},
				ChannelB: {Summary: "Service with auth, validation, and test coverage", Requirements: []string{"auth", "input validation", "coverage >= 80%"}},
				ChannelC: {Summary: "Multi-service backend with queueing and observability", Requirements: []string{"async jobs", "metrics", "structured logging", "runbook"}},
			},
			EstimatedHours:  map[Channel]int{ChannelA: 12, ChannelB: 24, ChannelC: 36},
			RemedyResources: []string{"REST API design guide", "Testing pyramid primer"},
		},
	}
}
