package jwt

import (
	"testing"
	"time"
)

func BenchmarkTokenCreation(b *testing.B) {
	engine := NewEngine(WithRegistry(NewRegistry()), WithSettings(NewSettings()))
	header := engine.NewHeader(15*time.Minute, "")
	payload := NewPayload("user123")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		token, err := engine.Create(header, payload)
		if err != nil {
			b.Fatalf("Failed to create token: %v", err)
		}
		_ = token.String()
	}
}

func BenchmarkTokenParse(b *testing.B) {
	engine := NewEngine(WithRegistry(NewRegistry()), WithSettings(NewSettings()))
	tokenString, err := engine.Issue("user123", 15*time.Minute)
	if err != nil {
		b.Fatalf("Failed to create token: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Parse(tokenString); err != nil {
			b.Fatalf("Failed to parse token: %v", err)
		}
	}
}

func BenchmarkTokenValidation(b *testing.B) {
	engine := NewEngine(WithRegistry(NewRegistry()), WithSettings(NewSettings()))
	tokenString, err := engine.Issue("user123", 15*time.Minute)
	if err != nil {
		b.Fatalf("Failed to create token: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !engine.IsValid(tokenString, true) {
			b.Fatal("Token should be valid")
		}
	}
}

func BenchmarkConcurrentValidation(b *testing.B) {
	engine := NewEngine(WithRegistry(NewRegistry()), WithSettings(NewSettings()))
	tokenString, err := engine.Issue("user123", 15*time.Minute)
	if err != nil {
		b.Fatalf("Failed to create token: %v", err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if !engine.IsValid(tokenString, true) {
				b.Error("Token should be valid")
			}
		}
	})
}
