package asset

// DefaultVehicleConfig is the built-in sandbox scene: Y-up world, four wheel rear-drive car,
// ground plane with a ramp and a crate
const DefaultVehicleConfig = `

# === World ===
[world]
gravity = [0.0, -9.81, 0.0]
fixed_step = 0.016666666666666666
max_sub_steps = 4

[[world.collider]]
name = "ground"
kind = "plane"
normal = [0.0, 1.0, 0.0]
position = [0.0, 0.0, 0.0]

# Ramp: two triangles rising 1.5 over 6 along +Z
[[world.collider]]
name = "ramp-a"
kind = "triangle"
vertices = [[-3.0, 0.0, 12.0], [3.0, 0.0, 12.0], [3.0, 1.5, 18.0]]

[[world.collider]]
name = "ramp-b"
kind = "triangle"
vertices = [[-3.0, 0.0, 12.0], [3.0, 1.5, 18.0], [-3.0, 1.5, 18.0]]

[[world.collider]]
name = "crate"
kind = "box"
position = [6.0, 0.25, 6.0]
half_extents = [1.0, 0.25, 1.0]

# Non-responding colliders are drawn but never hit by wheel rays
[[world.collider]]
name = "marker"
kind = "box"
position = [-6.0, 0.5, 6.0]
half_extents = [0.5, 0.5, 0.5]
response = false


# === Chassis ===
[chassis]
mass = 800.0
half_extents = [1.0, 0.5, 2.0]
position = [0.0, 1.2, 0.0]
linear_damping = 0.05
angular_damping = 0.1

# Chassis basis columns: X right, Y up, Z forward
[axes]
right = 0
up = 1
forward = 2


# === Suspension and tires ===
[tuning]
suspension_stiffness = 20.0
suspension_compression = 4.4
suspension_damping = 2.3
max_suspension_travel_cm = 500.0
friction_slip = 1.5
max_suspension_force = 6000.0
roll_influence = 0.1

[[wheel]]
connection = [0.9, -0.2, 1.4]
direction = [0.0, -1.0, 0.0]
axle = [-1.0, 0.0, 0.0]
rest_length = 0.6
radius = 0.4
front = true

[[wheel]]
connection = [-0.9, -0.2, 1.4]
direction = [0.0, -1.0, 0.0]
axle = [-1.0, 0.0, 0.0]
rest_length = 0.6
radius = 0.4
front = true

[[wheel]]
connection = [0.9, -0.2, -1.4]
direction = [0.0, -1.0, 0.0]
axle = [-1.0, 0.0, 0.0]
rest_length = 0.6
radius = 0.4
front = false

[[wheel]]
connection = [-0.9, -0.2, -1.4]
direction = [0.0, -1.0, 0.0]
axle = [-1.0, 0.0, 0.0]
rest_length = 0.6
radius = 0.4
front = false


# === Driver ===
[control]
drive = "rear"
max_engine_force = 3000.0
max_brake = 100.0
steering_clamp = 0.35
steering_rate = 1.5
`
