package mediagroup

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Item is one photo of an album as it arrives from Telegram.
type Item struct {
	ChatID       int64
	UserID       int64
	LanguageCode string
	MediaGroupID string
	MessageID    int
	FileID       string
	FileName     string
}

// Group is a settled album. Photos are ordered by message id, so Photos[0]
// is the first photo the user attached.
type Group struct {
	ChatID       int64
	UserID       int64
	LanguageCode string
	Photos       []Photo
}

type Photo struct {
	MessageID int
	FileID    string
	FileName  string
}

func (g Group) First() (Photo, bool) {
	if len(g.Photos) == 0 {
		return Photo{}, false
	}
	return g.Photos[0], true
}

type Options struct {
	Debounce time.Duration
	OnFlush  func(Group)
}

// Aggregator collects album items until no new item arrived for Debounce.
type Aggregator struct {
	mu       sync.Mutex
	debounce time.Duration
	onFlush  func(Group)
	groups   map[string]*pendingGroup
}

type pendingGroup struct {
	group Group
	timer *time.Timer
}

func New(opts Options) *Aggregator {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 1200 * time.Millisecond
	}

	return &Aggregator{
		debounce: debounce,
		onFlush:  opts.OnFlush,
		groups:   make(map[string]*pendingGroup),
	}
}

func (a *Aggregator) Add(item Item) {
	if item.MediaGroupID == "" || item.FileID == "" {
		return
	}

	key := makeKey(item.ChatID, item.MediaGroupID)
	photo := Photo{MessageID: item.MessageID, FileID: item.FileID, FileName: item.FileName}

	a.mu.Lock()
	defer a.mu.Unlock()

	pg, ok := a.groups[key]
	if !ok {
		pg = &pendingGroup{
			group: Group{
				ChatID:       item.ChatID,
				UserID:       item.UserID,
				LanguageCode: item.LanguageCode,
			},
		}
		a.groups[key] = pg
	}
	pg.group.Photos = append(pg.group.Photos, photo)

	if pg.timer != nil {
		pg.timer.Stop()
	}
	pg.timer = time.AfterFunc(a.debounce, func() {
		a.flush(key)
	})
}

// Pending reports how many albums are still collecting.
func (a *Aggregator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.groups)
}

// Stop flushes every pending album immediately.
func (a *Aggregator) Stop() {
	a.mu.Lock()
	keys := make([]string, 0, len(a.groups))
	for key, pg := range a.groups {
		if pg.timer != nil {
			pg.timer.Stop()
		}
		keys = append(keys, key)
	}
	a.mu.Unlock()

	for _, key := range keys {
		a.flush(key)
	}
}

func (a *Aggregator) flush(key string) {
	a.mu.Lock()
	pg, ok := a.groups[key]
	if !ok {
		a.mu.Unlock()
		return
	}
	delete(a.groups, key)
	group := pg.group
	onFlush := a.onFlush
	a.mu.Unlock()

	sort.SliceStable(group.Photos, func(i, j int) bool {
		return group.Photos[i].MessageID < group.Photos[j].MessageID
	})

	if onFlush != nil {
		onFlush(group)
	}
}

func makeKey(chatID int64, mediaGroupID string) string {
	return fmt.Sprintf("%d:%s", chatID, mediaGroupID)
}
