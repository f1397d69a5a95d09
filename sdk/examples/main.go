package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dangerclosesec/cscm/sdk/client"
)

const (
	// Change these values to match your environment
	serviceURL = "http://localhost:4790"
)

const program = `int main() {
    int x = 2 + 3 * 4;
    printf(x);
    return x - 1;
}`

func main() {
	config := &client.Config{
		BaseURL: serviceURL,
		Timeout: 10 * time.Second,
	}
	c := client.NewClient(config)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runExample(ctx, c); err != nil {
		log.Fatalf("Error running example: %v", err)
	}
}

func runExample(ctx context.Context, c *client.Client) error {
	fmt.Println("1. Checking service health...")
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf("service unavailable: %w", err)
	}

	fmt.Println("\n2. Compiling a program...")
	resp, err := c.Compile(ctx, &client.CompileRequest{Source: program, Name: "example.c"})
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}
	fmt.Print(resp.Output)

	fmt.Println("\n3. Compiling a program with a syntax error...")
	_, err = c.Compile(ctx, &client.CompileRequest{Source: "int main() { x = 1 }", Name: "broken.c"})
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Printf("   %s at line %d, column %d\n", apiErr.Code, apiErr.Line, apiErr.Column)
	} else if err != nil {
		return err
	}

	fmt.Println("\n4. Fetching compile history...")
	history, err := c.ListCompilations(ctx, &client.ListOptions{Limit: 5})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Code == "history_disabled" {
			fmt.Println("   history is disabled on this server")
			return nil
		}
		return fmt.Errorf("failed to list compilations: %w", err)
	}
	for _, entry := range history.Compilations {
		fmt.Printf("   %s %-10s success=%t\n", entry.Timestamp.Format(time.RFC3339), entry.SourceName, entry.Success)
	}

	return nil
}
