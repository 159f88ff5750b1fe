package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	SlotKey      string
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
