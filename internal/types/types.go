package types

// EntityID адресует слот в хранилище сущностей.
// Младшие 32 бита хранят индекс слота, старшие - поколение.
type EntityID uint64

// NoEntity никогда не выдаётся хранилищем.
const NoEntity EntityID = 0

func MakeEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32 {
	return uint32(id)
}

func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}
