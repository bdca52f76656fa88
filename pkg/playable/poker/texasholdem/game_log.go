package texasholdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"pokervm/pkg/deck"
	"pokervm/pkg/playable"
)

// LogMessages describes the turns in a human readable form
func LogMessages(turns []Turn) []*playable.LogMessage {
	msgs := make([]*playable.LogMessage, 0, len(turns))
	for _, t := range turns {
		msgs = append(msgs, &playable.LogMessage{
			UUID:      uuid.New().String(),
			PlayerIDs: []string{t.PlayerID},
			Message:   t.Action.LogMessage(t.Amount.String()),
			Time:      time.Unix(t.Timestamp, 0),
		})
	}

	return msgs
}

// ResultLogMessages describes the results of the last hand
func (g *Game) ResultLogMessages() []*playable.LogMessage {
	msgs := make([]*playable.LogMessage, 0, len(g.results)+1)
	if g.round != RoundEnd {
		return msgs
	}

	now := time.Unix(g.lastActivity, 0)
	msgs = append(msgs, &playable.LogMessage{
		UUID:    uuid.New().String(),
		Cards:   append([]deck.Card{}, g.communityCards...),
		Message: fmt.Sprintf("hand #%d is over", g.handNumber),
		Time:    now,
	})

	for _, r := range g.results {
		var message string
		switch r.Outcome {
		case OutcomeWon:
			message = fmt.Sprintf("won ${%s}", r.Amount)
			if r.Hand != "" {
				message += " with " + r.Hand
			}
		case OutcomeBusted:
			message = "busted"
			if r.Place > 0 {
				message = fmt.Sprintf("finished in place #%d for ${%s}", r.Place, r.Payout)
			}
		case OutcomeChampion:
			message = fmt.Sprintf("won the tournament for ${%s}", r.Payout)
		default:
			continue
		}

		msgs = append(msgs, &playable.LogMessage{
			UUID:      uuid.New().String(),
			PlayerIDs: []string{r.PlayerID},
			Message:   message,
			Time:      now,
		})
	}

	return msgs
}
