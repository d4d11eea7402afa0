package discord

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"riftwatch/internal/metrics"
	"riftwatch/internal/notifier"
	"riftwatch/internal/summary"
)

const (
	colorVictory = 0x00ff00
	colorDefeat  = 0xff0000

	thumbnailVictory = "https://i.postimg.cc/CxwjnWVk/pngegg.png"
	thumbnailDefeat  = "https://i.postimg.cc/XJBF0WwS/pngwing-com.png"
)

// discordSession is an interface that contains the methods from the discordgo.Session that we use.
// This allows for easy mocking in tests.
type discordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Discord.
type Notifier struct {
	session discordSession
	metrics metrics.Metrics
}

// NewNotifier creates a new Notifier with a bot token.
func NewNotifier(token string, metrics metrics.Metrics) (*Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Notifier{
		session: session,
		metrics: metrics,
	}, nil
}

// NewNotifierWithSession creates a new Notifier with a specific session instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithSession(session discordSession, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		session: session,
		metrics: metrics,
	}
}

// SendMatchNotification posts a match result embed to the given channel.
func (d *Notifier) SendMatchNotification(channelID, playerName string, sum *summary.MatchSummary, dryRun bool) error {
	embed := d.formatMatchEmbed(playerName, sum)
	return d.sendEmbed(channelID, embed, dryRun)
}

func (d *Notifier) sendEmbed(channelID string, embed *discordgo.MessageEmbed, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(embed, "", "  ")
		log.Info("[Dry Run] Would send Discord embed", "channel", channelID, "embed", string(jsonMsg))
		return nil
	}

	msg, err := d.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		d.metrics.IncDiscordNotifFailed()
		log.Error("Failed to send Discord embed", "error", err, "channel", channelID)
		return fmt.Errorf("failed to send embed: %w", err)
	}

	d.metrics.IncDiscordNotifSent()
	log.Info("Successfully sent Discord embed", "channel", channelID, "message", msg.ID)
	return nil
}

// formatMatchEmbed builds the match result embed with one field per role matchup.
func (d *Notifier) formatMatchEmbed(playerName string, sum *summary.MatchSummary) *discordgo.MessageEmbed {
	resultEmoji := "🏆"
	color := colorVictory
	thumbnail := thumbnailVictory
	if !sum.Win {
		resultEmoji = "❌"
		color = colorDefeat
		thumbnail = thumbnailDefeat
	}

	title := fmt.Sprintf("**%s** - **%s: %s %s - %s**",
		playerName, sum.GameMode, sum.GameResult, resultEmoji, sum.GameDuration)

	matchupsByRole := make(map[string]summary.Matchup, len(sum.Matchups))
	for _, matchup := range sum.Matchups {
		matchupsByRole[strings.ToUpper(matchup.Role)] = matchup
	}

	embed := &discordgo.MessageEmbed{
		Title:     title,
		Color:     color,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: thumbnail},
	}

	for _, role := range summary.Roles {
		matchup, ok := matchupsByRole[role]
		if !ok {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", roleEmoji(role), roleLabel(role)),
			Value:  fmt.Sprintf("%s\n%s", formatParticipant(matchup.Ally), formatParticipant(matchup.Enemy)),
			Inline: false,
		})
	}

	if len(embed.Fields) == 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: playerName,
			Value: fmt.Sprintf("K/D/A: **%d/%d/%d** | CS: **%d** | Gold: %s | Vision: %d",
				sum.Player.Kills, sum.Player.Deaths, sum.Player.Assists,
				sum.Player.Farm, formatGold(sum.Player.GoldEarned), sum.Player.VisionScore),
			Inline: false,
		})
	}

	return embed
}

func formatParticipant(p summary.ParticipantStats) string {
	return fmt.Sprintf("**%s** (%s)\nK/D/A: **%d/%d/%d** | CS: **%d** | Gold: %s | Vision: %d",
		p.SummonerName, p.ChampionName, p.Kills, p.Deaths, p.Assists,
		p.Farm, formatGold(p.GoldEarned), p.VisionScore)
}

func roleLabel(role string) string {
	if role == "UTILITY" {
		return "SUPPORT"
	}
	return role
}

func roleEmoji(role string) string {
	switch role {
	case "TOP":
		return "🔼"
	case "JUNGLE":
		return "🌲"
	case "MIDDLE":
		return "🛣️"
	case "BOTTOM":
		return "🔽"
	case "UTILITY":
		return "🛡️"
	default:
		return "❓"
	}
}

// formatGold renders gold amounts as a compact "k" suffix, e.g. 12345 -> "12,3k".
func formatGold(gold int) string {
	if gold < 1000 {
		return fmt.Sprintf("%d", gold)
	}
	goldK := float64(gold) / 1000.0
	if goldK == float64(int(goldK)) {
		return fmt.Sprintf("%dk", int(goldK))
	}
	return strings.Replace(fmt.Sprintf("%.1fk", goldK), ".", ",", 1)
}
