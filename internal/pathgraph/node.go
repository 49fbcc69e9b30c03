package pathgraph

// Channel represents a difficulty/pacing track through a node.
type Channel string

const (
	ChannelA Channel = "A" // Scaffolded baseline
	ChannelB Channel = "B" // Standard practice
	ChannelC Channel = "C" // Advanced challenge
)

// AllChannels returns the channels in ascending difficulty order.
func AllChannels() []Channel {
	return []Channel{ChannelA, ChannelB, ChannelC}
}

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelA, ChannelB, ChannelC:
		return true
	}
	return false
}

// Up returns the next channel one step up. C is the ceiling.
func (c Channel) Up() Channel {
	switch c {
	case ChannelA:
		return ChannelB
	case ChannelB:
		return ChannelC
	default:
		return ChannelC
	}
}

// Down returns the next channel one step down. A is the floor.
func (c Channel) Down() Channel {
	switch c {
	case ChannelC:
		return ChannelB
	case ChannelB:
		return ChannelA
	default:
		return ChannelA
	}
}

// DisplayName returns a human-readable name for a channel.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelA:
		return "A (scaffolded)"
	case ChannelB:
		return "B (standard)"
	case ChannelC:
		return "C (advanced)"
	default:
		return string(c)
	}
}

// Task describes what a student must deliver for a node on one channel.
type Task struct {
	Summary      string
	Requirements []string
}

// Node is a unit of curriculum with prerequisites, channel-specific
// tasks, and a completion gate.
type Node struct {
	ID             string
	Name           string
	Description    string
	Order          int
	Prerequisites  []string
	ChannelTasks   map[Channel]Task
	EstimatedHours map[Channel]int
	RemedyResources []string
}
