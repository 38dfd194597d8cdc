// Package today is the in-memory sample application behind the CLI and the
// end-to-end tests: appointments, tasks and unread-count folders exposed
// through relay connections, global node lookup, and a completeTask
// mutation. Its windowing policy and cursor encoding are deliberately local
// to this package; the relay layer only passes the inputs through.
package today

import (
	"context"
	"fmt"
	"sync"

	introspection "github.com/hanpama/graphdoc/internal/introspection"
	relay "github.com/hanpama/graphdoc/internal/relay"
	response "github.com/hanpama/graphdoc/internal/response"
	service "github.com/hanpama/graphdoc/internal/service"
)

// Appointment is an identity-bearing calendar entry. When is a DateTime
// custom scalar carried as a Scalar-kind value.
type Appointment struct {
	id      string
	When    string
	Subject string
	IsNow   bool
}

func (a *Appointment) ID(ctx context.Context) ([]byte, error) { return []byte(a.id), nil }

// Task is an identity-bearing todo entry.
type Task struct {
	id         string
	Title      string
	IsComplete bool
}

func (t *Task) ID(ctx context.Context) ([]byte, error) { return []byte(t.id), nil }

// Folder is an identity-bearing unread-count bucket.
type Folder struct {
	id          string
	Name        string
	UnreadCount int
}

func (f *Folder) ID(ctx context.Context) ([]byte, error) { return []byte(f.id), nil }

// Service holds the sample data set.
type Service struct {
	mu           sync.Mutex
	appointments []*Appointment
	tasks        []*Task
	folders      []*Folder
}

// NewService seeds the demo data.
func NewService() *Service {
	return &Service{
		appointments: []*Appointment{
			{id: "appointment-1", When: "2020-01-01T08:00:00Z", Subject: "Dentist", IsNow: false},
			{id: "appointment-2", When: "2020-01-01T10:30:00Z", Subject: "Standup", IsNow: true},
			{id: "appointment-3", When: "2020-01-02T14:00:00Z", Subject: "Design review", IsNow: false},
		},
		tasks: []*Task{
			{id: "task-1", Title: "Write report", IsComplete: false},
			{id: "task-2", Title: "Ship release", IsComplete: false},
		},
		folders: []*Folder{
			{id: "folder-1", Name: "Folder A", UnreadCount: 3},
			{id: "folder-2", Name: "Folder B", UnreadCount: 0},
		},
	}
}

// Query builds the root query object.
func (s *Service) Query() *service.Object {
	schema := Schema()
	return service.NewObject("Query", map[string]service.FieldResolver{
		"__schema":         introspection.SchemaField(schema),
		"__type":           introspection.TypeField(schema),
		"node":             relay.NodeField(s.lookup),
		"appointments":     relay.ConnectionField("AppointmentConnection", "AppointmentEdge", windowFunc(s.appointmentEdges)),
		"tasks":            relay.ConnectionField("TaskConnection", "TaskEdge", windowFunc(s.taskEdges)),
		"unreadCounts":     relay.ConnectionField("FolderConnection", "FolderEdge", windowFunc(s.folderEdges)),
		"appointmentsById": s.byID(s.appointmentObjectByID),
		"tasksById":        s.byID(s.taskObjectByID),
		"unreadCountsById": s.byID(s.folderObjectByID),
	}).WithMeta(schema)
}

// Mutation builds the root mutation object.
func (s *Service) Mutation() *service.Object {
	return service.NewObject("Mutation", map[string]service.FieldResolver{
		"completeTask": s.completeTask,
	})
}

// ---------------- object bindings ----------------

func (s *Service) appointmentObject(a *Appointment) *service.Object {
	return service.NewObject("Appointment", map[string]service.FieldResolver{
		"id": relay.IDField(a),
		"when": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			when := response.NewValue(response.KindScalar)
			if err := when.SetScalar(response.NewString(a.When)); err != nil {
				return response.Value{}, err
			}
			return when, nil
		},
		"subject": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if a.Subject == "" {
				return response.Value{}, nil
			}
			return response.NewString(a.Subject), nil
		},
		"isNow": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewBoolean(a.IsNow), nil
		},
	})
}

func (s *Service) taskObject(t *Task) *service.Object {
	return service.NewObject("Task", map[string]service.FieldResolver{
		"id": relay.IDField(t),
		"title": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewString(t.Title), nil
		},
		"isComplete": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return response.NewBoolean(t.IsComplete), nil
		},
	})
}

func (s *Service) folderObject(f *Folder) *service.Object {
	return service.NewObject("Folder", map[string]service.FieldResolver{
		"id": relay.IDField(f),
		"name": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if f.Name == "" {
				return response.Value{}, nil
			}
			return response.NewString(f.Name), nil
		},
		"unreadCount": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return response.NewInt(f.UnreadCount), nil
		},
	})
}

// ---------------- node lookup ----------------

// lookup maps a raw id to the concrete identity-bearing object. The id
// layout (a plain "<type>-<n>" string here) is this application's own
// convention.
func (s *Service) lookup(ctx context.Context, id []byte) (*service.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := string(id)
	for _, a := range s.appointments {
		if a.id == key {
			return s.appointmentObject(a), nil
		}
	}
	for _, t := range s.tasks {
		if t.id == key {
			return s.taskObject(t), nil
		}
	}
	for _, f := range s.folders {
		if f.id == key {
			return s.folderObject(f), nil
		}
	}
	return nil, nil
}

// ---------------- connections ----------------

// windowFunc adapts an edge snapshot into a relay.Window using this
// package's offset windowing with id cursors.
type windowFunc func() []relay.Edge

func (w windowFunc) Slice(ctx context.Context, args relay.PageArguments) (*relay.Page, error) {
	return slicePage(w(), args)
}

func (s *Service) appointmentEdges() []relay.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges := make([]relay.Edge, len(s.appointments))
	for i, a := range s.appointments {
		edges[i] = relay.Edge{Cursor: response.NewString(a.id), Node: s.appointmentObject(a)}
	}
	return edges
}

func (s *Service) taskEdges() []relay.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges := make([]relay.Edge, len(s.tasks))
	for i, t := range s.tasks {
		edges[i] = relay.Edge{Cursor: response.NewString(t.id), Node: s.taskObject(t)}
	}
	return edges
}

func (s *Service) folderEdges() []relay.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	edges := make([]relay.Edge, len(s.folders))
	for i, f := range s.folders {
		edges[i] = relay.Edge{Cursor: response.NewString(f.id), Node: s.folderObject(f)}
	}
	return edges
}

// slicePage applies the four pagination inputs over an edge snapshot.
// Cursors compare by position of the matching edge.
func slicePage(edges []relay.Edge, args relay.PageArguments) (*relay.Page, error) {
	start, end := 0, len(edges)
	if args.After != nil {
		pos, err := cursorPosition(edges, args.After)
		if err != nil {
			return nil, err
		}
		start = pos + 1
	}
	if args.Before != nil {
		pos, err := cursorPosition(edges, args.Before)
		if err != nil {
			return nil, err
		}
		if pos < end {
			end = pos
		}
	}
	if start > end {
		start = end
	}
	if args.First != nil && *args.First >= 0 && start+*args.First < end {
		end = start + *args.First
	}
	if args.Last != nil && *args.Last >= 0 && end-*args.Last > start {
		start = end - *args.Last
	}
	return &relay.Page{
		Info: relay.PageInfo{
			HasNextPage:     end < len(edges),
			HasPreviousPage: start > 0,
		},
		Edges: edges[start:end],
	}, nil
}

func cursorPosition(edges []relay.Edge, cursor *response.Value) (int, error) {
	want, err := cursor.StringValue()
	if err != nil {
		return 0, fmt.Errorf("malformed cursor")
	}
	for i := range edges {
		have, err := edges[i].Cursor.StringValue()
		if err != nil {
			return 0, err
		}
		if have == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown cursor %q", want)
}

// ---------------- byId lists ----------------

func (s *Service) byID(find func(id string) *service.Object) service.FieldResolver {
	return func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
		ids, err := idsArg(&p.Arguments)
		if err != nil {
			return response.Value{}, err
		}
		objs := make([]*service.Object, len(ids))
		for i, id := range ids {
			objs[i] = find(id)
		}
		return service.ResolveList(ctx, p, objs)
	}
}

func idsArg(args *response.Value) ([]string, error) {
	raw, err := service.RequireValue(args, "ids")
	if err != nil {
		return nil, err
	}
	elems, err := raw.Elements()
	if err != nil {
		return nil, fmt.Errorf("argument \"ids\": expected a list")
	}
	out := make([]string, len(elems))
	for i := range elems {
		s, err := elems[i].StringValue()
		if err != nil {
			return nil, fmt.Errorf("argument \"ids\": expected ID elements")
		}
		out[i] = s
	}
	return out, nil
}

func (s *Service) appointmentObjectByID(id string) *service.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.id == id {
			return s.appointmentObject(a)
		}
	}
	return nil
}

func (s *Service) taskObjectByID(id string) *service.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.id == id {
			return s.taskObject(t)
		}
	}
	return nil
}

func (s *Service) folderObjectByID(id string) *service.Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.folders {
		if f.id == id {
			return s.folderObject(f)
		}
	}
	return nil
}

// ---------------- mutation ----------------

func (s *Service) completeTask(ctx context.Context, p service.ResolverParams) (response.Value, error) {
	input, err := service.RequireValue(&p.Arguments, "input")
	if err != nil {
		return response.Value{}, err
	}
	idVal, err := input.Member("id")
	if err != nil {
		return response.Value{}, err
	}
	id, err := idVal.StringValue()
	if err != nil {
		return response.Value{}, fmt.Errorf("input.id: expected ID")
	}
	isComplete := true
	if v, ok, err := findMember(&input, "isComplete"); err != nil {
		return response.Value{}, err
	} else if ok {
		if isComplete, err = v.BooleanValue(); err != nil {
			return response.Value{}, fmt.Errorf("input.isComplete: expected Boolean")
		}
	}
	clientMutationID := ""
	hasClientMutationID := false
	if v, ok, err := findMember(&input, "clientMutationId"); err != nil {
		return response.Value{}, err
	} else if ok && v.Kind() != response.KindNull {
		if clientMutationID, err = v.StringValue(); err != nil {
			return response.Value{}, fmt.Errorf("input.clientMutationId: expected String")
		}
		hasClientMutationID = true
	}

	s.mu.Lock()
	var task *Task
	for _, t := range s.tasks {
		if t.id == id {
			task = t
			break
		}
	}
	if task != nil {
		task.IsComplete = isComplete
	}
	s.mu.Unlock()
	if task == nil {
		return response.Value{}, fmt.Errorf("unknown task id %q", id)
	}

	payload := service.NewObject("CompleteTaskPayload", map[string]service.FieldResolver{
		"task": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			return s.taskObject(task).Resolve(ctx, p)
		},
		"clientMutationId": func(ctx context.Context, p service.ResolverParams) (response.Value, error) {
			if !hasClientMutationID {
				return response.Value{}, nil
			}
			return response.NewString(clientMutationID), nil
		},
	})
	return payload.Resolve(ctx, p)
}

func findMember(obj *response.Value, name string) (*response.Value, bool, error) {
	pos, err := obj.Find(name)
	if err != nil {
		return nil, false, err
	}
	if pos == response.NotFound {
		return nil, false, nil
	}
	members, err := obj.Members()
	if err != nil {
		return nil, false, err
	}
	return &members[pos].Value, true, nil
}
