package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	followGameName  string
	followTagLine   string
	followRegion    string
	followHours     int
	followChannelID string
	followGuildID   string
)

func init() {
	followCmd.Flags().StringVar(&followGameName, "name", "", "Riot ID game name")
	followCmd.Flags().StringVar(&followTagLine, "tag", "", "Riot ID tag line")
	followCmd.Flags().StringVar(&followRegion, "region", "euw1", "Platform routing value, e.g. euw1")
	followCmd.Flags().IntVar(&followHours, "hours", 24, "Follow duration in hours (1-48)")
	followCmd.Flags().StringVar(&followChannelID, "channel", "", "Discord channel id for notifications")
	followCmd.Flags().StringVar(&followGuildID, "guild", "", "Discord guild id")

	unfollowCmd.Flags().StringVar(&followGameName, "name", "", "Riot ID game name")
	unfollowCmd.Flags().StringVar(&followTagLine, "tag", "", "Riot ID tag line")
	unfollowCmd.Flags().StringVar(&followGuildID, "guild", "", "Discord guild id")

	followsCmd.Flags().StringVar(&followGuildID, "guild", "", "Discord guild id")
	statsCmd.Flags().StringVar(&followGuildID, "guild", "", "Discord guild id")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(followsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Trigger a watcher pass over all follows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/check")
	},
}

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Follow a summoner for match notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/follow", map[string]any{
			"game_name":  followGameName,
			"tag_line":   followTagLine,
			"region":     followRegion,
			"hours":      followHours,
			"channel_id": followChannelID,
			"guild_id":   followGuildID,
		})
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow",
	Short: "Stop following a summoner",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/unfollow", map[string]any{
			"game_name": followGameName,
			"tag_line":  followTagLine,
			"guild_id":  followGuildID,
		})
	},
}

var followsCmd = &cobra.Command{
	Use:   "follows",
	Short: "List the follows for a guild",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/follows?guild_id=" + followGuildID)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the summoner leaderboard for a guild",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats?guild_id=" + followGuildID)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload map[string]any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
