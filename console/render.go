package console

import (
	"fmt"
	"io"
	"mytwitter/domain"
	"mytwitter/repositories"
	"mytwitter/search"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "15:04 02 Jan 2006"

func (c *Console) paint(style color.Style, text string) string {
	if !c.config.Colours {
		return text
	}
	return style.Render(text)
}

func (c *Console) title(text string) string {
	return c.paint(color.New(color.FgBlue, color.OpBold), text)
}

func (c *Console) println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

func (c *Console) success(format string, args ...any) {
	c.println(c.paint(color.New(color.FgGreen), fmt.Sprintf(format, args...)))
}

func (c *Console) failure(err error) {
	c.log.Debug("Action failed", "error", err)
	c.println(c.paint(color.New(color.FgRed), "Error: "+err.Error()))
}

// card prints counts of the profile along with its kind.
func (c *Console) card(username string) error {
	tweets, err := c.service.Tweets(username)
	if err != nil {
		return err
	}
	followers, err := c.service.Followers(username)
	if err != nil {
		return err
	}
	followees, err := c.service.Followees(username)
	if err != nil {
		return err
	}
	kind, err := c.service.ProfileKind(username)
	if err != nil {
		return err
	}
	c.println(c.title(username) + " (" + kind.String() + ")")
	table := c.table([]string{"Tweets", "Followers", "Following"})
	table.Append([]string{
		strconv.Itoa(len(tweets)),
		strconv.Itoa(len(followers)),
		strconv.Itoa(len(followees)),
	})
	table.Render()
	return nil
}

func (c *Console) renderTweets(tweets []domain.Tweet) {
	if len(tweets) == 0 {
		c.println("No tweets yet.")
		return
	}
	table := c.table([]string{"ID", "Author", "Posted", "Text"})
	for _, tweet := range tweets {
		table.Append([]string{
			strconv.FormatInt(tweet.ID, 10),
			"@" + tweet.Author,
			tweet.CreatedAt.Format(timeLayout),
			tweet.Text,
		})
	}
	table.Render()
}

func (c *Console) renderProfiles(profiles []*domain.Profile) {
	if len(profiles) == 0 {
		c.println("Nobody here.")
		return
	}
	table := c.table([]string{"Username", "Kind", "Tweets", "Followers"})
	for _, profile := range profiles {
		table.Append([]string{
			profile.Username(),
			profile.Kind().String(),
			strconv.Itoa(profile.TweetCount()),
			strconv.Itoa(profile.FollowerCount()),
		})
	}
	table.Render()
}

func (c *Console) renderHits(hits []search.Hit) {
	if len(hits) == 0 {
		return
	}
	table := c.table([]string{"ID", "Author", "Lang", "Posted", "Text"})
	for _, hit := range hits {
		table.Append([]string{
			strconv.FormatInt(hit.TweetID, 10),
			"@" + hit.Author,
			hit.Lang,
			hit.At.Format(timeLayout),
			hit.Text,
		})
	}
	table.Render()
}

func (c *Console) renderActivity(entries []repositories.ActivityEntry) {
	if len(entries) == 0 {
		c.println("Nothing happened yet.")
		return
	}
	table := c.table([]string{"At", "Kind", "Actor", "Target", "Detail"})
	for _, entry := range entries {
		table.Append([]string{
			entry.At.Format(timeLayout),
			entry.Kind,
			entry.Actor,
			entry.Target,
			entry.Detail,
		})
	}
	table.Render()
}

func (c *Console) table(header []string) *tablewriter.Table {
	return newTable(c.out, header)
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
