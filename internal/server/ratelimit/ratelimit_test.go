package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 1 token per second

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	// Wait for 1 token to refill
	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}

	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/insights", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, "/insights", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		if !allowed {
			t.Fatalf("Expected health check %d to be allowed", i+1)
		}
	}
}

func TestLimiter_RefreshEndpointBurst(t *testing.T) {
	config := &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "10.0.0.1"

	// Refresh burst capacity is 2
	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow(clientID, "/jobs/refresh", "POST")
		if !allowed {
			t.Errorf("Expected refresh %d to be allowed", i+1)
		}
	}

	allowed, _ := limiter.Allow(clientID, "/jobs/refresh", "POST")
	if allowed {
		t.Error("Expected refresh beyond burst to be denied")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/recommendations", "POST")
		if !allowed {
			t.Fatalf("Expected whitelisted request %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.0.2.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.0.2.1", "/recommendations", "POST")
	if allowed {
		t.Error("Expected blacklisted client to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/jobs/refresh", "POST")
		if !allowed {
			t.Fatal("Expected all requests to be allowed when disabled")
		}
	}
}

func TestLimiter_ConcurrentClients(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  50,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	for c := 0; c < 10; c++ {
		wg.Add(1)
		go func(client int) {
			defer wg.Done()
			clientID := string(rune('a' + client))
			for i := 0; i < 50; i++ {
				allowed, _ := limiter.Allow(clientID, "/jobs", "GET")
				if !allowed {
					t.Errorf("client %d request %d unexpectedly denied", client, i+1)
				}
			}
		}(c)
	}
	wg.Wait()
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	if cfg := MatchEndpoint("/jobs/refresh", "POST", configs); cfg == nil || cfg.Limit != 10 {
		t.Error("Expected refresh endpoint to match its strict tier")
	}
	if cfg := MatchEndpoint("/recommendations", "POST", configs); cfg == nil || cfg.Limit != 300 {
		t.Error("Expected recommendations endpoint to match its tier")
	}
	if cfg := MatchEndpoint("/health", "GET", configs); cfg == nil || cfg.Limit != 0 {
		t.Error("Expected health endpoint to be unlimited")
	}
	if cfg := MatchEndpoint("/jobs", "GET", configs); cfg != nil {
		t.Error("Expected read endpoint to fall through to default")
	}
}
