// Package suggest wraps the external text-suggestion service. Every
// call degrades to a fixed default on failure; no method ever returns
// an error to its caller.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, client: client}
}

type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewSummary struct {
	Summary string `json:"summary"`
	Verdict string `json:"verdict"`
}

type RestaurantInfo struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}

type Pick struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DishSummary returns one descriptive sentence for the dish.
func (c *Client) DishSummary(ctx context.Context, name, description string) string {
	prompt := fmt.Sprintf(`You are a world-class food critic. Describe why someone would crave the dish %q (%q) in exactly one short, punchy, sensory-rich sentence. Focus on textures and primary flavors. Do not use hashtags or emojis.`, name, description)

	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		return "A chef-recommended signature dish."
	}
	return text
}

// Reviews returns a vibe summary plus a two-word verdict for the
// restaurant's reviews.
func (c *Client) Reviews(ctx context.Context, restaurantName string, reviews []ReviewInput) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{
			Summary: "No reviews yet. Be the first to share your experience!",
			Verdict: "New Arrival",
		}
	}

	var sb strings.Builder
	for _, r := range reviews {
		fmt.Fprintf(&sb, "[Rating: %d/5]: %s\n", r.Rating, r.Comment)
	}
	prompt := fmt.Sprintf(`Analyze these reviews for %q.
1. Summarize the general 'vibe' in 15 words or less.
2. Provide a 2-word 'Verdict' (e.g., "Hidden Gem", "Crowd Favorite").
Return format: "VIBE: [Summary] | VERDICT: [Verdict]"
%s`, restaurantName, sb.String())

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return ReviewSummary{
			Summary: "Consistently positive feedback across the board.",
			Verdict: "Highly Rated",
		}
	}

	summary := ReviewSummary{
		Summary: "Consistently praised for quality and service.",
		Verdict: "Local Favorite",
	}
	parts := strings.Split(text, "|")
	if len(parts) > 0 {
		if vibe := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "VIBE:")); vibe != "" {
			summary.Summary = vibe
		}
	}
	if len(parts) > 1 {
		if verdict := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[1]), "VERDICT:")); verdict != "" {
			summary.Verdict = verdict
		}
	}
	return summary
}

// OrderNotes suggests up to three short kitchen-note phrases for the
// dishes in the cart.
func (c *Client) OrderNotes(ctx context.Context, dishNames []string) []string {
	prompt := fmt.Sprintf("For an order containing: %s, suggest 3 common short kitchen instructions or preferences (max 3 words each). Return as a simple comma-separated list.",
		strings.Join(dishNames, ", "))

	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		return []string{"Extra napkins", "Well done", "Less salt"}
	}

	notes := []string{}
	for _, part := range strings.Split(text, ",") {
		note := strings.TrimSuffix(strings.TrimSpace(part), ".")
		if note == "" {
			continue
		}
		notes = append(notes, note)
		if len(notes) == 3 {
			break
		}
	}
	if len(notes) == 0 {
		return []string{"Extra sauce", "No cutlery", "Spicy"}
	}
	return notes
}

// TasteProfile labels the user's palate from their order history.
func (c *Client) TasteProfile(ctx context.Context, orderedDishes []string) string {
	if len(orderedDishes) == 0 {
		return "Explore some restaurants to discover your taste profile!"
	}

	prompt := fmt.Sprintf(`Based on these past orders: %s, summarize the user's food personality in 3 evocative words (e.g., "The Adventurous Foodie", "The Comfort Craver"). Then add a 10-word description of their palate.`,
		strings.Join(orderedDishes, ", "))

	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		return "A lover of fine flavors and diverse culinary experiences."
	}
	return text
}

// PersonalizedPick recommends one restaurant similar to the user's
// favorites, nil when there are no favorites or the service fails.
func (c *Client) PersonalizedPick(ctx context.Context, favoriteNames []string, all []RestaurantInfo) *Pick {
	if len(favoriteNames) == 0 {
		return nil
	}

	var sb strings.Builder
	for _, r := range all {
		fmt.Fprintf(&sb, "%s (%s: %s)\n", r.Name, r.Cuisine, r.Description)
	}
	prompt := fmt.Sprintf(`User loves: %s.
From this list, pick the ONE most similar/complementary restaurant the user hasn't favorited:
%s
Explain why in 10 words.
Return format: "RESTAURANT_NAME | REASON"`,
		strings.Join(favoriteNames, ", "), sb.String())

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil
	}

	parts := strings.SplitN(text, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Pick{
		Name:   strings.TrimSpace(parts[0]),
		Reason: strings.TrimSpace(parts[1]),
	}
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"prompt": prompt})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[suggest] request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[suggest] unexpected status: %d", resp.StatusCode)
		return "", fmt.Errorf("suggestion service returned %d", resp.StatusCode)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return strings.TrimSpace(body.Text), nil
}
