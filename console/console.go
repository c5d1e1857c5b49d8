// Package console is the interactive text front end: it collects raw input,
// calls the twitter service and renders what comes back.
package console

import (
	"bufio"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mytwitter/domain"
	"mytwitter/errors"
	"mytwitter/repositories"
	"mytwitter/search"
	"mytwitter/services"
	"strconv"
	"strings"
)

type Config struct {
	Colours       bool
	SearchLimit   int
	ActivityLimit int
}

type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	service services.ITwitterService
	index   search.ITweetIndex
	journal repositories.IActivityJournal
	ids     domain.IDSource
	config  Config
	log     *slog.Logger
}

func New(in io.Reader, out io.Writer,
	service services.ITwitterService,
	index search.ITweetIndex,
	journal repositories.IActivityJournal,
	ids domain.IDSource,
	config Config,
	log *slog.Logger) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
		index:   index,
		journal: journal,
		ids:     ids,
		config:  config,
		log:     log,
	}
}

const (
	optionCreate = iota + 1
	optionOpen
	optionList
	optionSearch
	optionActivity
	optionQuit
)

const (
	optionTweets = iota + 1
	optionTimeline
	optionFollowers
	optionFollowees
	optionPost
	optionFollow
	optionShowTweet
	optionDeactivate
	optionBack
)

const mainMenu = `1. Create a profile
2. Open a profile
3. List registered profiles
4. Search tweets
5. Recent activity
6. Quit`

const profileMenu = `1. Tweets
2. Timeline
3. Followers
4. Followees
5. Post a tweet
6. Follow a profile
7. Show a tweet
8. Deactivate profile
9. Back to main menu`

// Run loops on the main menu until the user quits or the input is exhausted.
// Errors raised by an action are printed and the loop goes on.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		c.println(c.title("MyTwitter"))
		c.println(mainMenu)
		option, err := c.option(optionQuit)
		if err != nil {
			return ignoreEOF(err)
		}
		if option == optionQuit {
			c.println("Bye.")
			return nil
		}
		if err = c.dispatchMain(ctx, option); err != nil {
			if stdErrors.Is(err, io.EOF) {
				return nil
			}
			c.failure(err)
		}
	}
}

func (c *Console) dispatchMain(ctx context.Context, option int) error {
	switch option {
	case optionCreate:
		return c.createProfile(ctx)
	case optionOpen:
		return c.openProfile(ctx)
	case optionList:
		c.listProfiles()
		return nil
	case optionSearch:
		return c.searchTweets(ctx)
	case optionActivity:
		return c.recentActivity()
	}
	return fmt.Errorf("%w: %d", errors.ErrInvalidCommand, option)
}

func (c *Console) createProfile(ctx context.Context) error {
	username, err := c.ask("Username: ")
	if err != nil {
		return err
	}
	var profile *domain.Profile
	for profile == nil {
		kind, err := c.ask("Individual or organization? [I/O]: ")
		if err != nil {
			return err
		}
		switch strings.ToUpper(kind) {
		case "I":
			cpf, err := c.ask("CPF: ")
			if err != nil {
				return err
			}
			profile = domain.NewIndividual(username, cpf)
		case "O":
			cnpj, err := c.ask("CNPJ: ")
			if err != nil {
				return err
			}
			profile = domain.NewOrganization(username, cnpj)
		default:
			c.println("Choose I or O.")
		}
	}
	if err = c.service.CreateProfile(ctx, profile); err != nil {
		return err
	}
	c.success("Profile %s created.", profile.Username())
	return nil
}

func (c *Console) openProfile(ctx context.Context) error {
	username, err := c.ask("Username: ")
	if err != nil {
		return err
	}
	if !c.service.UserExists(username) {
		c.println("Inactive or unknown profile.")
		return nil
	}
	return c.profileLoop(ctx, username)
}

func (c *Console) profileLoop(ctx context.Context, username string) error {
	for {
		if err := c.card(username); err != nil {
			return err
		}
		c.println(profileMenu)
		option, err := c.option(optionBack)
		if err != nil {
			return err
		}
		switch option {
		case optionBack:
			return nil
		case optionDeactivate:
			if err = c.service.DeactivateProfile(ctx, username); err != nil {
				return err
			}
			c.success("Profile %s deactivated.", username)
			return nil
		}
		if err = c.dispatchProfile(ctx, username, option); err != nil {
			if stdErrors.Is(err, io.EOF) {
				return err
			}
			c.failure(err)
		}
	}
}

func (c *Console) dispatchProfile(ctx context.Context, username string, option int) error {
	switch option {
	case optionTweets:
		tweets, err := c.service.Tweets(username)
		if err != nil {
			return err
		}
		c.println(c.title("Tweets of " + username))
		c.renderTweets(tweets)
	case optionTimeline:
		tweets, err := c.service.Timeline(username)
		if err != nil {
			return err
		}
		c.println(c.title("Timeline of " + username))
		c.renderTweets(tweets)
	case optionFollowers:
		followers, err := c.service.Followers(username)
		if err != nil {
			return err
		}
		c.println(c.title("Followers of " + username))
		c.renderProfiles(followers)
	case optionFollowees:
		followees, err := c.service.Followees(username)
		if err != nil {
			return err
		}
		c.println(c.title("Followees of " + username))
		c.renderProfiles(followees)
	case optionPost:
		text, err := c.ask("Message: ")
		if err != nil {
			return err
		}
		tweet, err := c.service.PostTweet(ctx, username, text, c.ids)
		if err != nil {
			return err
		}
		c.success("Tweet #%d posted.", tweet.ID)
	case optionFollow:
		followee, err := c.ask("Profile to follow: ")
		if err != nil {
			return err
		}
		err = c.service.Follow(ctx, username, followee)
		if stdErrors.Is(err, errors.ErrAlreadyFollowing) {
			c.println("You already follow that profile.")
			return nil
		}
		if err != nil {
			return err
		}
		c.success("You now follow %s.", followee)
	case optionShowTweet:
		line, err := c.ask("Tweet id: ")
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", errors.ErrInvalidCommand, line)
		}
		tweet, err := c.service.FindTweet(username, id)
		if err != nil {
			return err
		}
		c.renderTweets([]domain.Tweet{tweet})
	default:
		return fmt.Errorf("%w: %d", errors.ErrInvalidCommand, option)
	}
	return nil
}

func (c *Console) listProfiles() {
	usernames := c.service.RegisteredUsernames()
	c.println(c.title(fmt.Sprintf("Showing %d profiles", len(usernames))))
	for _, username := range usernames {
		c.println("\t-" + username)
	}
}

func (c *Console) searchTweets(ctx context.Context) error {
	input, err := c.ask("Search (--author, --lang, --limit): ")
	if err != nil {
		return err
	}
	hits, err := c.index.Search(ctx, search.NewQuery(input, c.config.SearchLimit))
	if err != nil {
		return err
	}
	c.println(c.title(fmt.Sprintf("%d tweets found", len(hits))))
	c.renderHits(hits)
	return nil
}

func (c *Console) recentActivity() error {
	entries, err := c.journal.Recent(c.config.ActivityLimit)
	if err != nil {
		return err
	}
	c.println(c.title("Recent activity"))
	c.renderActivity(entries)
	return nil
}

// option reads menu choices until one falls within [1, last].
func (c *Console) option(last int) (int, error) {
	for {
		line, err := c.ask("Option: ")
		if err != nil {
			return 0, err
		}
		option, err := strconv.Atoi(line)
		if err == nil && option >= 1 && option <= last {
			return option, nil
		}
		c.failure(fmt.Errorf("%w: %q", errors.ErrInvalidCommand, line))
	}
}

// ask returns io.EOF once the input is exhausted.
func (c *Console) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func ignoreEOF(err error) error {
	if stdErrors.Is(err, io.EOF) {
		return nil
	}
	return err
}
