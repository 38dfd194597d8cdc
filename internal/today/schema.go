package today

import (
	intro "github.com/hanpama/graphdoc/internal/introspection"
)

// Schema is the introspection registry for the sample type system. It is
// attached to the Query root with WithMeta and backs __schema and __type.
func Schema() *intro.Schema {
	id := intro.NonNull(intro.Named("ID"))
	str := intro.Named("String")
	boolean := intro.NonNull(intro.Named("Boolean"))
	cursor := intro.NonNull(intro.Named("ItemCursor"))
	pageArgs := []intro.InputValue{
		{Name: "first", Type: intro.Named("Int")},
		{Name: "after", Type: intro.Named("ItemCursor")},
		{Name: "last", Type: intro.Named("Int")},
		{Name: "before", Type: intro.Named("ItemCursor")},
	}
	idsArg := []intro.InputValue{
		{Name: "ids", Type: intro.NonNull(intro.List(id))},
	}
	connection := func(name, edge string) intro.Type {
		return intro.Type{
			Kind: intro.ObjectKind,
			Name: name,
			Fields: []intro.Field{
				{Name: "pageInfo", Type: intro.NonNull(intro.Named("PageInfo"))},
				{Name: "edges", Type: intro.List(intro.Named(edge))},
			},
		}
	}
	edge := func(name, node string) intro.Type {
		return intro.Type{
			Kind: intro.ObjectKind,
			Name: name,
			Fields: []intro.Field{
				{Name: "node", Type: intro.Named(node)},
				{Name: "cursor", Type: cursor},
			},
		}
	}

	return intro.NewSchema("Query", "Mutation", []intro.Type{
		{Kind: intro.ScalarKind, Name: "ID"},
		{Kind: intro.ScalarKind, Name: "String"},
		{Kind: intro.ScalarKind, Name: "Boolean"},
		{Kind: intro.ScalarKind, Name: "Int"},
		{Kind: intro.ScalarKind, Name: "Float"},
		{Kind: intro.ScalarKind, Name: "ItemCursor", Description: "Opaque pagination cursor."},
		{Kind: intro.ScalarKind, Name: "DateTime", Description: "Point in time."},
		{
			Kind: intro.InterfaceKind,
			Name: "Node",
			Fields: []intro.Field{
				{Name: "id", Type: id},
			},
			PossibleTypes: []intro.TypeRef{
				intro.Named("Appointment"), intro.Named("Task"), intro.Named("Folder"),
			},
		},
		{
			Kind: intro.ObjectKind,
			Name: "PageInfo",
			Fields: []intro.Field{
				{Name: "hasNextPage", Type: boolean},
				{Name: "hasPreviousPage", Type: boolean},
			},
		},
		{
			Kind:       intro.ObjectKind,
			Name:       "Appointment",
			Interfaces: []intro.TypeRef{intro.Named("Node")},
			Fields: []intro.Field{
				{Name: "id", Type: id},
				{Name: "when", Type: intro.Named("DateTime")},
				{Name: "subject", Type: str},
				{Name: "isNow", Type: boolean},
			},
		},
		{
			Kind:       intro.ObjectKind,
			Name:       "Task",
			Interfaces: []intro.TypeRef{intro.Named("Node")},
			Fields: []intro.Field{
				{Name: "id", Type: id},
				{Name: "title", Type: str},
				{Name: "isComplete", Type: boolean},
			},
		},
		{
			Kind:       intro.ObjectKind,
			Name:       "Folder",
			Interfaces: []intro.TypeRef{intro.Named("Node")},
			Fields: []intro.Field{
				{Name: "id", Type: id},
				{Name: "name", Type: str},
				{Name: "unreadCount", Type: intro.NonNull(intro.Named("Int"))},
			},
		},
		edge("AppointmentEdge", "Appointment"),
		connection("AppointmentConnection", "AppointmentEdge"),
		edge("TaskEdge", "Task"),
		connection("TaskConnection", "TaskEdge"),
		edge("FolderEdge", "Folder"),
		connection("FolderConnection", "FolderEdge"),
		{
			Kind: intro.InputObjectKind,
			Name: "CompleteTaskInput",
			InputFields: []intro.InputValue{
				{Name: "id", Type: id},
				{Name: "isComplete", Type: intro.Named("Boolean"), DefaultValue: "true"},
				{Name: "clientMutationId", Type: str},
			},
		},
		{
			Kind: intro.ObjectKind,
			Name: "CompleteTaskPayload",
			Fields: []intro.Field{
				{Name: "task", Type: intro.Named("Task")},
				{Name: "clientMutationId", Type: str},
			},
		},
		{
			Kind: intro.ObjectKind,
			Name: "Query",
			Fields: []intro.Field{
				{Name: "node", Type: intro.Named("Node"), Args: []intro.InputValue{{Name: "id", Type: id}}},
				{Name: "appointments", Type: intro.NonNull(intro.Named("AppointmentConnection")), Args: pageArgs},
				{Name: "tasks", Type: intro.NonNull(intro.Named("TaskConnection")), Args: pageArgs},
				{Name: "unreadCounts", Type: intro.NonNull(intro.Named("FolderConnection")), Args: pageArgs},
				{Name: "appointmentsById", Type: intro.List(intro.Named("Appointment")), Args: idsArg},
				{Name: "tasksById", Type: intro.List(intro.Named("Task")), Args: idsArg},
				{Name: "unreadCountsById", Type: intro.List(intro.Named("Folder")), Args: idsArg},
			},
		},
		{
			Kind: intro.ObjectKind,
			Name: "Mutation",
			Fields: []intro.Field{
				{
					Name: "completeTask",
					Type: intro.Named("CompleteTaskPayload"),
					Args: []intro.InputValue{
						{Name: "input", Type: intro.NonNull(intro.Named("CompleteTaskInput"))},
					},
				},
			},
		},
	})
}
