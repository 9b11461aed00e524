package optional

import "encoding/json"

// Value представляет поле запроса, которое может быть не передано,
// передано как null или передано со значением. Поле, отсутствующее в
// JSON, остается в состоянии "не установлено"; явный null фиксируется
// отдельно от отсутствия.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of создает установленное значение
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Null создает явно переданный null
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet сообщает, присутствовало ли поле в запросе
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsNull сообщает, был ли передан явный null
func (v Value[T]) IsNull() bool {
	return v.null
}

// Get возвращает значение и признак того, что оно было передано не как null
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set && !v.null
}

// UnmarshalJSON реализует json.Unmarshaler. Вызывается только для полей,
// присутствующих в документе, поэтому сам факт вызова означает set=true.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if string(data) == "null" {
		v.null = true
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON реализует json.Marshaler
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
