package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datepick/pkg/caldate"
	"tableflip.dev/datepick/pkg/picker"
)

// CurrentSchema tags stored selections for future migrations.
const CurrentSchema = "recent/v1"

// Selection is one recorded commit.
type Selection struct {
	Schema     string      `json:"schema"`
	ID         string      `json:"id,omitempty"`
	Role       picker.Role `json:"role"`
	Year       int         `json:"year"`
	Month      time.Month  `json:"month"`
	Day        int         `json:"day"`
	Week       int         `json:"week"`
	RecordedAt time.Time   `json:"recordedAt"`
}

// Date reconstructs the selected calendar date.
func (s *Selection) Date() caldate.Date {
	return caldate.Date{Year: s.Year, Month: s.Month, Day: s.Day}
}

// Persistence defines the storage contract for recorded selections.
type Persistence interface {
	Record(role picker.Role, date caldate.Date, week int) error
	List(ctx context.Context, role picker.Role) []*Selection
	ListAll(ctx context.Context) []*Selection
	Roles(ctx context.Context) []picker.Role
	Clear(role picker.Role) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Selection, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	s := &Selection{}
	if err := json.Unmarshal(val, s); err != nil {
		return nil, err
	}
	if s.Schema == "" {
		s.Schema = CurrentSchema
	}
	pk := keyToPathTransform(key)
	s.ID = pk.FileName
	if s.Role == "" && len(pk.Path) > 0 {
		s.Role = picker.Role(pk.Path[0])
	}
	return s, nil
}

// Record stores one committed selection keyed by role and commit time.
func (p *persistence) Record(role picker.Role, date caldate.Date, week int) error {
	if role == picker.RoleNone {
		role = "standalone"
	}
	s := &Selection{
		Schema:     CurrentSchema,
		Role:       role,
		Year:       date.Year,
		Month:      date.Month,
		Day:        date.Day,
		Week:       week,
		RecordedAt: time.Now(),
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s-%d", role, s.RecordedAt.UnixNano())
	return p.d.Write(key, data)
}

// List returns the recorded selections for one role, oldest first.
func (p *persistence) List(ctx context.Context, role picker.Role) []*Selection {
	all := make([]*Selection, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) == 0 || pk.Path[0] != string(role) {
			continue
		}
		s, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	sortSelections(all)
	return all
}

// ListAll returns every recorded selection, oldest first.
func (p *persistence) ListAll(ctx context.Context) []*Selection {
	all := make([]*Selection, 0)
	for key := range p.d.Keys(ctx.Done()) {
		s, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, s)
	}
	sortSelections(all)
	return all
}

// Roles lists the roles that have at least one recorded selection.
func (p *persistence) Roles(ctx context.Context) []picker.Role {
	seen := make(map[picker.Role]struct{})
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) > 0 && pk.Path[0] != "" {
			seen[picker.Role(pk.Path[0])] = struct{}{}
		}
	}
	roles := make([]picker.Role, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Clear erases every recorded selection for the role.
func (p *persistence) Clear(role picker.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) > 0 && pk.Path[0] == string(role) {
			if err := p.d.Erase(key); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortSelections(selections []*Selection) {
	sort.SliceStable(selections, func(i, j int) bool {
		left := selections[i]
		right := selections[j]
		if left == nil || right == nil {
			return left != nil
		}
		if left.RecordedAt.Equal(right.RecordedAt) {
			return left.ID < right.ID
		}
		return left.RecordedAt.Before(right.RecordedAt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
