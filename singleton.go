package singleton

import "fmt"

type Singleton struct {
	property string
}

var instance = New(func() *Singleton {
	return &Singleton{property: "hello, design pattern!"}
}, WithName("singleton"))

// GetInstance returns the process-wide Singleton, creating it on first use.
func GetInstance() *Singleton {
	return instance()
}

func (ins *Singleton) Property() string {
	return ins.property
}

func (ins *Singleton) Do() {
	fmt.Println(ins.property)
}
