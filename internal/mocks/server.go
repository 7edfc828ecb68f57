package mocks

import (
	"net"

	"github.com/stretchr/testify/mock"
)

// SecurityLayer mocks model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(&m.Mock, t)
	return m
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := m.Called(protocol, addr)
	ln, _ := ret.Get(0).(net.Listener)
	return ln, ret.Error(1)
}
