package ast

type arm uint8

const (
	noArm arm = iota
	firstArm
	secondArm
)

// Either holds exactly one of a first value of type A or a second value of
// type B. The zero Either holds neither and is rejected by every setter that
// accepts one.
type Either[A, B any] struct {
	first  A
	second B
	arm    arm
}

// First returns an Either holding a. It panics if a is a nil pointer or
// interface; a nil slice is accepted as an empty list.
func First[A, B any](a A) Either[A, B] {
	if isNil(a) {
		violation("Either.First", "payload is nil")
	}
	return Either[A, B]{first: a, arm: firstArm}
}

// Second returns an Either holding b, with the same nil rules as First.
func Second[A, B any](b B) Either[A, B] {
	if isNil(b) {
		violation("Either.Second", "payload is nil")
	}
	return Either[A, B]{second: b, arm: secondArm}
}

func (e Either[A, B]) IsFirst() bool  { return e.arm == firstArm }
func (e Either[A, B]) IsSecond() bool { return e.arm == secondArm }

// Valid reports whether e holds a value. Only the zero Either is invalid.
func (e Either[A, B]) Valid() bool { return e.arm != noArm }

// First returns the first value, panicking if e holds the second.
func (e Either[A, B]) First() A {
	if e.arm != firstArm {
		violation("Either.First", "either does not hold its first arm")
	}
	return e.first
}

// Second returns the second value, panicking if e holds the first.
func (e Either[A, B]) Second() B {
	if e.arm != secondArm {
		violation("Either.Second", "either does not hold its second arm")
	}
	return e.second
}

// Value returns whichever value is held.
func (e Either[A, B]) Value() any {
	switch e.arm {
	case firstArm:
		return e.first
	case secondArm:
		return e.second
	}
	return nil
}

// Match calls onFirst or onSecond with the held value.
func (e Either[A, B]) Match(onFirst func(A), onSecond func(B)) {
	switch e.arm {
	case firstArm:
		onFirst(e.first)
	case secondArm:
		onSecond(e.second)
	default:
		violation("Either.Match", "either holds no value")
	}
}

// MapEither transforms the held value with the function for its arm,
// keeping the arm.
func MapEither[A, B, C, D any](e Either[A, B], onFirst func(A) C, onSecond func(B) D) Either[C, D] {
	switch e.arm {
	case firstArm:
		return First[C, D](onFirst(e.first))
	case secondArm:
		return Second[C, D](onSecond(e.second))
	}
	violation("MapEither", "either holds no value")
	return Either[C, D]{}
}
