package model

// Faculty is identified by name and remembers the classrooms it owes hours
// to, in the order the obligations were registered.
type Faculty struct {
	Name string `csv:"Faculty"`

	rooms []string
}

// Rooms lists the classrooms this faculty teaches in, in registration order.
func (f *Faculty) Rooms() []string {
	return f.rooms
}

func (f *Faculty) addRoom(name string) {
	f.rooms = append(f.rooms, name)
}
