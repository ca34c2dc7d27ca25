package main

import (
	"fmt"

	"github.com/slack-go/slack"
)

// PostReport drops the console rendering of the report into the
// configured channel. One plain message per run; nobody gets pinged.
func PostReport(api *slack.Client, channelID, report string) error {
	_, _, err := api.PostMessage(
		channelID,
		slack.MsgOptionText(fmt.Sprintf("```%s```", report), false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("posting report to %s: %w", channelID, err)
	}
	return nil
}
