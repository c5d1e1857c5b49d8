package domain

import "slices"

// Profile is a registered identity of the network.
// Followers and followees are shared references to other profiles; a profile
// never owns the profiles it is linked to.
type Profile struct {
	username  string
	active    bool
	identity  Identity
	tweets    []Tweet
	followers []*Profile
	followees []*Profile
}

func NewProfile(username string, identity Identity) *Profile {
	return &Profile{
		username: username,
		active:   true,
		identity: identity,
	}
}

func NewIndividual(username, cpf string) *Profile {
	return NewProfile(username, Individual{CPF: cpf})
}

func NewOrganization(username, cnpj string) *Profile {
	return NewProfile(username, Organization{CNPJ: cnpj})
}

func (p *Profile) Username() string { return p.username }

func (p *Profile) SetUsername(username string) { p.username = username }

func (p *Profile) IsActive() bool { return p.active }

func (p *Profile) Activate() { p.active = true }

// Deactivate only flips the activity flag, tweets and edges are kept.
func (p *Profile) Deactivate() { p.active = false }

func (p *Profile) Identity() Identity { return p.identity }

// Kind falls back to KindUnknown when no identity is attached.
func (p *Profile) Kind() Kind {
	if p.identity == nil {
		return KindUnknown
	}
	return p.identity.Kind()
}

func (p *Profile) AddTweet(tweet Tweet) {
	p.tweets = append(p.tweets, tweet)
}

// Tweet looks up an own tweet by identifier.
func (p *Profile) Tweet(id int64) (Tweet, bool) {
	idx := slices.IndexFunc(p.tweets, func(t Tweet) bool { return t.ID == id })
	if idx < 0 {
		return Tweet{}, false
	}
	return p.tweets[idx], true
}

func (p *Profile) TweetCount() int { return len(p.tweets) }

// RemoveTweet drops the own tweet carrying id and reports whether one was found.
func (p *Profile) RemoveTweet(id int64) bool {
	idx := slices.IndexFunc(p.tweets, func(t Tweet) bool { return t.ID == id })
	if idx < 0 {
		return false
	}
	p.tweets = slices.Delete(p.tweets, idx, idx+1)
	return true
}

// AddFollowee links other as followed by p. Adding the same profile twice,
// nil or p itself has no effect.
func (p *Profile) AddFollowee(other *Profile) {
	p.followees = addEdge(p, p.followees, other)
}

// AddFollower links other as a follower of p, with the same rules as AddFollowee.
func (p *Profile) AddFollower(other *Profile) {
	p.followers = addEdge(p, p.followers, other)
}

func addEdge(owner *Profile, edges []*Profile, other *Profile) []*Profile {
	if other == nil || other == owner || slices.Contains(edges, other) {
		return edges
	}
	return append(edges, other)
}

// RemoveFollowee unlinks other from the followees of p.
func (p *Profile) RemoveFollowee(other *Profile) {
	p.followees = removeEdge(p.followees, other)
}

// RemoveFollower unlinks other from the followers of p.
func (p *Profile) RemoveFollower(other *Profile) {
	p.followers = removeEdge(p.followers, other)
}

func removeEdge(edges []*Profile, other *Profile) []*Profile {
	return slices.DeleteFunc(edges, func(e *Profile) bool { return e == other })
}

// IsFollowedBy reports whether other appears in the follower list of p.
func (p *Profile) IsFollowedBy(other *Profile) bool {
	return slices.Contains(p.followers, other)
}

func (p *Profile) FollowerCount() int { return len(p.followers) }

func (p *Profile) Followers() []*Profile { return slices.Clone(p.followers) }

func (p *Profile) Followees() []*Profile { return slices.Clone(p.followees) }

// Tweets returns own tweets, most recent first.
func (p *Profile) Tweets() []Tweet {
	tweets := slices.Clone(p.tweets)
	SortNewestFirst(tweets)
	return tweets
}

// Timeline merges the tweets of every followee, in followee order, with the
// own tweets and returns them most recent first.
func (p *Profile) Timeline() []Tweet {
	var timeline []Tweet
	for _, followee := range p.followees {
		timeline = append(timeline, followee.tweets...)
	}
	timeline = append(timeline, p.tweets...)
	SortNewestFirst(timeline)
	return timeline
}
