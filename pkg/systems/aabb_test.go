package systems

import (
	"testing"

	"github.com/decker502/skyraid/pkg/components"
)

func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name string
		pos1 components.PositionComponent
		col1 components.CollisionComponent
		pos2 components.PositionComponent
		col2 components.CollisionComponent
		want bool
	}{
		{
			name: "子弹嵌入敌机",
			pos1: components.PositionComponent{X: 100, Y: 100},
			col1: components.CollisionComponent{Width: 4, Height: 10},
			pos2: components.PositionComponent{X: 98, Y: 95},
			col2: components.CollisionComponent{Width: 24, Height: 40},
			want: true,
		},
		{
			name: "完全重叠",
			pos1: components.PositionComponent{X: 10, Y: 10},
			col1: components.CollisionComponent{Width: 50, Height: 50},
			pos2: components.PositionComponent{X: 10, Y: 10},
			col2: components.CollisionComponent{Width: 50, Height: 50},
			want: true,
		},
		{
			name: "右边缘刚好接触",
			pos1: components.PositionComponent{X: 0, Y: 0},
			col1: components.CollisionComponent{Width: 50, Height: 50},
			pos2: components.PositionComponent{X: 50, Y: 0},
			col2: components.CollisionComponent{Width: 50, Height: 50},
			want: false,
		},
		{
			name: "下边缘刚好接触",
			pos1: components.PositionComponent{X: 0, Y: 0},
			col1: components.CollisionComponent{Width: 50, Height: 50},
			pos2: components.PositionComponent{X: 0, Y: 50},
			col2: components.CollisionComponent{Width: 50, Height: 50},
			want: false,
		},
		{
			name: "X 重叠但 Y 分离",
			pos1: components.PositionComponent{X: 0, Y: 0},
			col1: components.CollisionComponent{Width: 50, Height: 10},
			pos2: components.PositionComponent{X: 20, Y: 30},
			col2: components.CollisionComponent{Width: 50, Height: 10},
			want: false,
		},
		{
			name: "重叠不足一个像素",
			pos1: components.PositionComponent{X: 0, Y: 0},
			col1: components.CollisionComponent{Width: 50, Height: 50},
			pos2: components.PositionComponent{X: 49.5, Y: 49.5},
			col2: components.CollisionComponent{Width: 10, Height: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkAABBCollision(&tt.pos1, &tt.col1, &tt.pos2, &tt.col2); got != tt.want {
				t.Errorf("checkAABBCollision() = %v, want %v", got, tt.want)
			}
			// 对称
			if got := checkAABBCollision(&tt.pos2, &tt.col2, &tt.pos1, &tt.col1); got != tt.want {
				t.Errorf("checkAABBCollision() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
