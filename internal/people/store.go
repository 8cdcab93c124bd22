package people

type Store interface {
	Lookup(key string) (*Person, error)
	Exists(key string) bool
	List() []Person
	AddPhoto(key string, photo Photo) (*Photo, error)
	Ping() error
}
